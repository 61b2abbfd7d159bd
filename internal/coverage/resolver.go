package coverage

import (
	"sort"

	"Band_Plan/internal/model"
)

// Snapshot 一次解算所需的全部输入，由调用方从存储层取好后传入。
// 解算是同步纯计算，结果只对这份快照负责；真正建事件前还要用
// ValidateSelection 再校验一次。
type Snapshot struct {
	GroupID      uint64
	Members      []model.GroupMember
	Availability map[uint64]map[string]bool // userID -> 标记有空的日期集合
	Commitments  *CommitmentIndex
}

// Substitution 某天某个主力缺席时由哪个替补顶上
type Substitution struct {
	PrincipalID   uint64 `json:"principal_id"`
	PrincipalName string `json:"principal_name"`
	MemberID      uint64 `json:"member_id"`
	MemberName    string `json:"member_name"`
}

// Gap 某天无法被覆盖的主力及其乐器，用于向用户解释为什么不可用
type Gap struct {
	PrincipalID   uint64   `json:"principal_id"`
	PrincipalName string   `json:"principal_name"`
	Instruments   []string `json:"instruments"`
}

type Verdict struct {
	Date          string         `json:"date"`
	Available     bool           `json:"available"`
	Substitutions []Substitution `json:"substitutions,omitempty"`
	Gaps          []Gap          `json:"gaps,omitempty"`
}

type Result struct {
	Available    []string           `json:"available"`
	NotAvailable []string           `json:"not_available"`
	Verdicts     map[string]Verdict `json:"verdicts"`
}

type memberDate struct {
	memberID uint64
	date     string
}

// Resolve 逐日期判定整队可用性：
//  1. 所有主力有空 -> 可用，不需要替补；
//  2. 否则每个缺席主力都要有一个有空的替补整套覆盖其乐器；
//  3. 有一个主力覆盖不了 -> 不可用。
//
// 同一个替补可以同时"顶"多个缺席主力，引擎不做替补占用去重，
// 这是有意保留的既有行为，见 DESIGN.md。
// 没有成员或没有主力时返回空结果，不算错误。
func Resolve(s Snapshot) Result {
	res := Result{Verdicts: make(map[string]Verdict)}

	principals := Principals(s.Members)
	if len(s.Members) == 0 || len(principals) == 0 {
		return res
	}
	substitutes := Substitutes(s.Members)

	// free 在一次解算里会被反复问到，查过一次就记下来
	freeMemo := make(map[memberDate]bool)
	free := func(m *model.GroupMember, date string) bool {
		key := memberDate{m.ID, date}
		if v, ok := freeMemo[key]; ok {
			return v
		}
		v := s.free(m, date)
		freeMemo[key] = v
		return v
	}

	for _, date := range s.candidateDates() {
		var absent []model.GroupMember
		for _, p := range principals {
			if !free(&p, date) {
				absent = append(absent, p)
			}
		}

		verdict := Verdict{Date: date, Available: true}
		for i := range absent {
			p := &absent[i]
			var covered bool
			for j := range substitutes {
				sub := &substitutes[j]
				if free(sub, date) && covers(sub, p) {
					verdict.Substitutions = append(verdict.Substitutions, Substitution{
						PrincipalID:   p.ID,
						PrincipalName: p.Name,
						MemberID:      sub.ID,
						MemberName:    sub.Name,
					})
					covered = true
					break
				}
			}
			if !covered {
				verdict.Available = false
				verdict.Gaps = append(verdict.Gaps, Gap{
					PrincipalID:   p.ID,
					PrincipalName: p.Name,
					Instruments:   instrumentNames(p),
				})
			}
		}

		if verdict.Available {
			res.Available = append(res.Available, date)
		} else {
			res.NotAvailable = append(res.NotAvailable, date)
			verdict.Substitutions = nil
		}
		res.Verdicts[date] = verdict
	}

	sort.Strings(res.Available)
	sort.Strings(res.NotAvailable)
	return res
}

// Eligibility 事件编辑器里每个成员的当日状态，主力且有空的默认入选
type Eligibility struct {
	MemberID uint64 `json:"member_id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Free     bool   `json:"free"`
}

// EligibleMembers 给出指定日期每个成员是否可到场
func EligibleMembers(s Snapshot, date string) []Eligibility {
	out := make([]Eligibility, 0, len(s.Members))
	for i := range s.Members {
		m := &s.Members[i]
		out = append(out, Eligibility{
			MemberID: m.ID,
			Name:     m.Name,
			Role:     m.Role,
			Free:     s.free(m, date),
		})
	}
	return out
}

// free 有空 = 标记过该天 且 没被任何乐队的事件占用。
// 未关联账号的占位成员不构成约束，视为总是有空（决策见 DESIGN.md）。
func (s Snapshot) free(m *model.GroupMember, date string) bool {
	if m.UserID == nil {
		return true
	}
	if !s.Availability[*m.UserID][date] {
		return false
	}
	return !s.Commitments.Committed(*m.UserID, date, s.GroupID)
}

// candidateDates 候选日期域 = 所有成员的空闲标记日期 ∪ 所有成员的外部占用日期
func (s Snapshot) candidateDates() []string {
	seen := make(map[string]bool)
	var out []string

	userIDs := make(map[uint64]bool, len(s.Members))
	for _, m := range s.Members {
		if m.UserID != nil {
			userIDs[*m.UserID] = true
		}
	}

	for userID, dates := range s.Availability {
		if !userIDs[userID] {
			continue
		}
		for date := range dates {
			if !seen[date] {
				seen[date] = true
				out = append(out, date)
			}
		}
	}
	for _, date := range s.Commitments.externalDates(userIDs, s.GroupID) {
		if !seen[date] {
			seen[date] = true
			out = append(out, date)
		}
	}

	sort.Strings(out)
	return out
}

func instrumentNames(m *model.GroupMember) []string {
	names := make([]string, 0, len(m.Instruments))
	for _, ins := range m.Instruments {
		names = append(names, ins.Name)
	}
	return names
}
