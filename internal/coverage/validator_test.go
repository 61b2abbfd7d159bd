package coverage

import (
	"errors"
	"reflect"
	"testing"

	"Band_Plan/internal/model"
)

func TestValidateSelectionAggregateCoverage(t *testing.T) {
	drummer := member(1, uid(10), model.RolePrincipal, drums)
	singer := member(2, uid(20), model.RolePrincipal, vocals)
	sub := member(3, uid(30), model.RoleSubstitute, drums)
	members := []model.GroupMember{drummer, singer, sub}

	tests := []struct {
		name     string
		selected map[uint64]bool
		missing  []string
	}{
		{
			name:     "all principals selected",
			selected: map[uint64]bool{1: true, 2: true},
		},
		{
			name:     "substitute covers unselected drummer",
			selected: map[uint64]bool{2: true, 3: true},
		},
		{
			name:     "drummer unselected and uncovered",
			selected: map[uint64]bool{2: true},
			missing:  []string{"Drums"},
		},
		{
			name:     "nobody selected",
			selected: map[uint64]bool{},
			missing:  []string{"Drums", "Vocals"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSelection(members, tt.selected)
			if tt.missing == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var missingErr *MissingInstrumentsError
			if !errors.As(err, &missingErr) {
				t.Fatalf("error = %v, want MissingInstrumentsError", err)
			}
			if !reflect.DeepEqual(missingErr.Instruments, tt.missing) {
				t.Fatalf("instruments = %v, want %v", missingErr.Instruments, tt.missing)
			}
		})
	}
}

func TestValidateSelectionIsMorePermissiveThanResolver(t *testing.T) {
	// 校验器看的是并集——两个替补各覆盖主力的一件乐器也算过，
	// 而 Resolve 要求一个替补整套覆盖。两条规则的差异是有意保留的。
	principal := member(1, uid(10), model.RolePrincipal, guitar, bass)
	subGuitar := member(2, uid(20), model.RoleSubstitute, guitar)
	subBass := member(3, uid(30), model.RoleSubstitute, bass)
	members := []model.GroupMember{principal, subGuitar, subBass}

	if err := ValidateSelection(members, map[uint64]bool{2: true, 3: true}); err != nil {
		t.Fatalf("aggregate coverage rejected: %v", err)
	}

	// 同样的阵容在 Resolve 下不可用：没有替补同时有吉他和贝斯
	rows := []AssignmentRow{{UserID: 10, GroupID: 2, Date: "2026-10-01"}}
	res := Resolve(snapshot(members, avail(uint64(20), "2026-10-01", uint64(30), "2026-10-01"), rows))
	if len(res.Available) != 0 {
		t.Fatalf("resolver accepted split coverage: %v", res.Available)
	}
}

func TestValidateSelectionPrincipalCoversPeer(t *testing.T) {
	// 覆盖者不限角色：在场的主力也可以补另一个主力的乐器
	a := member(1, uid(10), model.RolePrincipal, guitar, vocals)
	b := member(2, uid(20), model.RolePrincipal, vocals)
	members := []model.GroupMember{a, b}

	if err := ValidateSelection(members, map[uint64]bool{1: true}); err != nil {
		t.Fatalf("selected principal should cover peer's vocals: %v", err)
	}
}

func TestMissingInstrumentsErrorMessage(t *testing.T) {
	err := &MissingInstrumentsError{Instruments: []string{"Drums", "Vocals"}}
	if err.Error() != "missing instruments: Drums, Vocals" {
		t.Fatalf("message = %q", err.Error())
	}
}
