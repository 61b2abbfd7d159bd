package coverage

import (
	"reflect"
	"testing"

	"Band_Plan/internal/model"
)

var (
	guitar = model.Instrument{ID: 1, Name: "Guitar"}
	bass   = model.Instrument{ID: 2, Name: "Bass"}
	drums  = model.Instrument{ID: 3, Name: "Drums"}
	vocals = model.Instrument{ID: 4, Name: "Vocals"}
)

func uid(v uint64) *uint64 { return &v }

func member(id uint64, userID *uint64, role string, instruments ...model.Instrument) model.GroupMember {
	return model.GroupMember{
		ID:          id,
		GroupID:     1,
		UserID:      userID,
		Name:        "member-" + string(rune('a'+id)),
		Role:        role,
		Instruments: instruments,
	}
}

func avail(pairs ...any) map[uint64]map[string]bool {
	out := make(map[uint64]map[string]bool)
	for i := 0; i < len(pairs); i += 2 {
		userID := pairs[i].(uint64)
		date := pairs[i+1].(string)
		if out[userID] == nil {
			out[userID] = make(map[string]bool)
		}
		out[userID][date] = true
	}
	return out
}

func snapshot(members []model.GroupMember, availability map[uint64]map[string]bool, rows []AssignmentRow) Snapshot {
	if availability == nil {
		availability = map[uint64]map[string]bool{}
	}
	return Snapshot{
		GroupID:      1,
		Members:      members,
		Availability: availability,
		Commitments:  NewCommitmentIndex(rows),
	}
}

func TestResolveAllPrincipalsFree(t *testing.T) {
	// 主力(吉他)标了有空，替补都不用出场
	members := []model.GroupMember{
		member(1, uid(10), model.RolePrincipal, guitar),
		member(2, uid(20), model.RoleSubstitute, guitar, bass),
	}
	res := Resolve(snapshot(members, avail(uint64(10), "2026-09-05"), nil))

	if !reflect.DeepEqual(res.Available, []string{"2026-09-05"}) {
		t.Fatalf("available = %v", res.Available)
	}
	if len(res.NotAvailable) != 0 {
		t.Fatalf("not available = %v", res.NotAvailable)
	}
	v := res.Verdicts["2026-09-05"]
	if !v.Available || len(v.Substitutions) != 0 {
		t.Fatalf("verdict = %+v, want available without substitutions", v)
	}
}

func TestResolveSubstitutionCoversExternalCommitment(t *testing.T) {
	// 主力在别的乐队有演出，替补(吉他+贝斯)有空且覆盖吉他 -> 可用
	members := []model.GroupMember{
		member(1, uid(10), model.RolePrincipal, guitar),
		member(2, uid(20), model.RoleSubstitute, guitar, bass),
	}
	rows := []AssignmentRow{{UserID: 10, GroupID: 2, Date: "2026-09-05"}}
	res := Resolve(snapshot(members, avail(uint64(10), "2026-09-05", uint64(20), "2026-09-05"), rows))

	if !reflect.DeepEqual(res.Available, []string{"2026-09-05"}) {
		t.Fatalf("available = %v", res.Available)
	}
	v := res.Verdicts["2026-09-05"]
	if len(v.Substitutions) != 1 {
		t.Fatalf("substitutions = %+v", v.Substitutions)
	}
	sub := v.Substitutions[0]
	if sub.PrincipalID != 1 || sub.MemberID != 2 {
		t.Fatalf("substitution = %+v", sub)
	}
	// 顶班者必须有空且乐器是主力乐器的超集
	s := snapshot(members, avail(uint64(10), "2026-09-05", uint64(20), "2026-09-05"), rows)
	coveringSub := members[1]
	if !s.free(&coveringSub, "2026-09-05") || !covers(&coveringSub, &members[0]) {
		t.Fatal("reported substitute does not satisfy the coverage rule")
	}
}

func TestResolveInstrumentMismatch(t *testing.T) {
	// 替补只有贝斯，顶不了吉他主力 -> 不可用，解释里带上缺口
	members := []model.GroupMember{
		member(1, uid(10), model.RolePrincipal, guitar),
		member(2, uid(20), model.RoleSubstitute, bass),
	}
	rows := []AssignmentRow{{UserID: 10, GroupID: 2, Date: "2026-09-05"}}
	res := Resolve(snapshot(members, avail(uint64(10), "2026-09-05", uint64(20), "2026-09-05"), rows))

	if len(res.Available) != 0 {
		t.Fatalf("available = %v", res.Available)
	}
	if !reflect.DeepEqual(res.NotAvailable, []string{"2026-09-05"}) {
		t.Fatalf("not available = %v", res.NotAvailable)
	}
	v := res.Verdicts["2026-09-05"]
	if len(v.Gaps) != 1 || v.Gaps[0].PrincipalID != 1 {
		t.Fatalf("gaps = %+v", v.Gaps)
	}
	if !reflect.DeepEqual(v.Gaps[0].Instruments, []string{"Guitar"}) {
		t.Fatalf("gap instruments = %v", v.Gaps[0].Instruments)
	}
}

func TestResolveEveryAbsentPrincipalNeedsCoverage(t *testing.T) {
	// 鼓手和主唱都缺席，替补只会打鼓：鼓覆盖了，主唱没人顶 -> 不可用
	members := []model.GroupMember{
		member(1, uid(10), model.RolePrincipal, drums),
		member(2, uid(20), model.RolePrincipal, vocals),
		member(3, uid(30), model.RoleSubstitute, drums),
	}
	rows := []AssignmentRow{
		{UserID: 10, GroupID: 2, Date: "2026-09-06"},
		{UserID: 20, GroupID: 3, Date: "2026-09-06"},
	}
	res := Resolve(snapshot(members, avail(uint64(30), "2026-09-06"), rows))

	if len(res.Available) != 0 {
		t.Fatalf("available = %v", res.Available)
	}
	v := res.Verdicts["2026-09-06"]
	if len(v.Gaps) != 1 || v.Gaps[0].PrincipalName != members[1].Name {
		t.Fatalf("gaps = %+v", v.Gaps)
	}
	// 不可用的日期不附带顶班解释
	if v.Substitutions != nil {
		t.Fatalf("substitutions should be dropped on unavailable dates, got %+v", v.Substitutions)
	}
}

func TestResolveSubstituteReusedAcrossPrincipals(t *testing.T) {
	// 既有行为：同一个替补可以同时"顶"两个缺席主力，引擎不查占用冲突
	members := []model.GroupMember{
		member(1, uid(10), model.RolePrincipal, guitar),
		member(2, uid(20), model.RolePrincipal, bass),
		member(3, uid(30), model.RoleSubstitute, guitar, bass),
	}
	rows := []AssignmentRow{
		{UserID: 10, GroupID: 2, Date: "2026-09-07"},
		{UserID: 20, GroupID: 2, Date: "2026-09-07"},
	}
	res := Resolve(snapshot(members, avail(uint64(30), "2026-09-07"), rows))

	if !reflect.DeepEqual(res.Available, []string{"2026-09-07"}) {
		t.Fatalf("available = %v", res.Available)
	}
	v := res.Verdicts["2026-09-07"]
	if len(v.Substitutions) != 2 {
		t.Fatalf("substitutions = %+v", v.Substitutions)
	}
	for _, sub := range v.Substitutions {
		if sub.MemberID != 3 {
			t.Fatalf("expected member 3 to cover both principals, got %+v", sub)
		}
	}
}

func TestResolveCommitmentOverridesAvailability(t *testing.T) {
	// 标了有空但当天有事件占用（本队或外队），都不算有空
	for _, groupID := range []uint64{1, 2} {
		members := []model.GroupMember{member(1, uid(10), model.RolePrincipal, guitar)}
		rows := []AssignmentRow{{UserID: 10, GroupID: groupID, Date: "2026-09-08"}}
		s := snapshot(members, avail(uint64(10), "2026-09-08"), rows)
		if s.free(&members[0], "2026-09-08") {
			t.Fatalf("group %d: committed member reported free", groupID)
		}
	}
}

func TestResolveNoPrincipals(t *testing.T) {
	// 有成员但没有主力 -> 两个集合都为空，不报错
	members := []model.GroupMember{
		member(1, uid(10), model.RoleSubstitute, guitar),
	}
	res := Resolve(snapshot(members, avail(uint64(10), "2026-09-09"), nil))
	if len(res.Available) != 0 || len(res.NotAvailable) != 0 || len(res.Verdicts) != 0 {
		t.Fatalf("result = %+v, want empty", res)
	}

	res = Resolve(snapshot(nil, nil, nil))
	if len(res.Available) != 0 || len(res.NotAvailable) != 0 {
		t.Fatalf("empty roster result = %+v, want empty", res)
	}
}

func TestResolveUnlinkedMemberAlwaysFree(t *testing.T) {
	// 占位成员（没绑账号）不阻塞排期
	members := []model.GroupMember{
		member(1, nil, model.RolePrincipal, guitar),
		member(2, uid(20), model.RolePrincipal, bass),
	}
	res := Resolve(snapshot(members, avail(uint64(20), "2026-09-10"), nil))
	if !reflect.DeepEqual(res.Available, []string{"2026-09-10"}) {
		t.Fatalf("available = %v", res.Available)
	}
}

func TestResolveCandidateDatesIncludeExternalCommitments(t *testing.T) {
	// 只有外部占用、没人标有空的日期也要被评估（结果是不可用）
	members := []model.GroupMember{
		member(1, uid(10), model.RolePrincipal, guitar),
	}
	rows := []AssignmentRow{{UserID: 10, GroupID: 9, Date: "2026-09-11"}}
	res := Resolve(snapshot(members, nil, rows))

	if !reflect.DeepEqual(res.NotAvailable, []string{"2026-09-11"}) {
		t.Fatalf("not available = %v", res.NotAvailable)
	}
}

func TestResolveIgnoresStrangersAvailability(t *testing.T) {
	// 非本队成员的空闲标记不产生候选日期
	members := []model.GroupMember{
		member(1, uid(10), model.RolePrincipal, guitar),
	}
	res := Resolve(snapshot(members, avail(uint64(99), "2026-09-12"), nil))
	if len(res.Available) != 0 || len(res.NotAvailable) != 0 {
		t.Fatalf("result = %+v, want empty", res)
	}
}

func TestEligibleMembers(t *testing.T) {
	members := []model.GroupMember{
		member(1, uid(10), model.RolePrincipal, guitar),
		member(2, uid(20), model.RoleSubstitute, bass),
		member(3, nil, model.RolePrincipal, drums),
	}
	rows := []AssignmentRow{{UserID: 20, GroupID: 4, Date: "2026-09-13"}}
	s := snapshot(members, avail(uint64(10), "2026-09-13", uint64(20), "2026-09-13"), rows)

	got := EligibleMembers(s, "2026-09-13")
	want := map[uint64]bool{1: true, 2: false, 3: true}
	if len(got) != 3 {
		t.Fatalf("eligibility rows = %d", len(got))
	}
	for _, e := range got {
		if e.Free != want[e.MemberID] {
			t.Errorf("member %d free = %v, want %v", e.MemberID, e.Free, want[e.MemberID])
		}
	}
}
