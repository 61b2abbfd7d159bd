// Package coverage 是排期引擎的核心：给定花名册、空闲标记和已有的事件占用，
// 计算乐队哪些日期可以演出，以及替补如何顶替缺席的主力。
// 本包只做纯计算，不碰数据库；快照由 service 层组装。
package coverage

import "Band_Plan/internal/model"

// DateLayout 引擎内部统一用 "2006-01-02" 字符串表示日期
const DateLayout = "2006-01-02"

func Principals(members []model.GroupMember) []model.GroupMember {
	var out []model.GroupMember
	for _, m := range members {
		if m.Role == model.RolePrincipal {
			out = append(out, m)
		}
	}
	return out
}

func Substitutes(members []model.GroupMember) []model.GroupMember {
	var out []model.GroupMember
	for _, m := range members {
		if m.Role == model.RoleSubstitute {
			out = append(out, m)
		}
	}
	return out
}

// covers 判断 s 的乐器集合是否完整覆盖 p 的乐器集合。
// 必须一人全包，不支持多个替补拼凑一个主力的乐器。
func covers(s, p *model.GroupMember) bool {
	for _, ins := range p.Instruments {
		if !s.HasInstrument(ins.ID) {
			return false
		}
	}
	return true
}
