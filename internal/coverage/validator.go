package coverage

import (
	"fmt"
	"sort"
	"strings"

	"Band_Plan/internal/model"
)

// MissingInstrumentsError 阵容校验不通过，带上缺的乐器名让调用方展示。
// 调整勾选后可以重试，不是致命错误。
type MissingInstrumentsError struct {
	Instruments []string
}

func (e *MissingInstrumentsError) Error() string {
	return fmt.Sprintf("missing instruments: %s", strings.Join(e.Instruments, ", "))
}

// ValidateSelection 保存事件前校验勾选的阵容：
// 每个未入选主力的每件乐器，都必须有某个已入选成员（不限角色）能演奏。
//
// 注意这里是整体聚合覆盖，比 Resolve 的"一个替补整套顶一个主力"宽松。
// 原系统两处规则就不一致，这里照原样保留（见 DESIGN.md）：
// 日历自动判定从严，人工排阵容从宽。
func ValidateSelection(members []model.GroupMember, selected map[uint64]bool) error {
	missing := make(map[string]bool)

	for i := range members {
		p := &members[i]
		if p.Role != model.RolePrincipal || selected[p.ID] {
			continue
		}
		for _, ins := range p.Instruments {
			if !instrumentCovered(members, selected, ins.ID) {
				missing[ins.Name] = true
			}
		}
	}

	if len(missing) == 0 {
		return nil
	}
	names := make([]string, 0, len(missing))
	for name := range missing {
		names = append(names, name)
	}
	sort.Strings(names)
	return &MissingInstrumentsError{Instruments: names}
}

func instrumentCovered(members []model.GroupMember, selected map[uint64]bool, instrumentID uint64) bool {
	for i := range members {
		m := &members[i]
		if selected[m.ID] && m.HasInstrument(instrumentID) {
			return true
		}
	}
	return false
}
