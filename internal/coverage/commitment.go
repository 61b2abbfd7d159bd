package coverage

// AssignmentRow 某个用户在某天被某个乐队的事件占用
type AssignmentRow struct {
	UserID  uint64
	GroupID uint64
	Date    string
}

// CommitmentIndex 回答"这个人这天有没有被占用，被谁占用"。
// 事件占用比空闲标记优先级高：人再怎么标了有空，有演出就是没空。
type CommitmentIndex struct {
	byUser map[uint64]map[string][]uint64 // userID -> date -> groupIDs
}

func NewCommitmentIndex(rows []AssignmentRow) *CommitmentIndex {
	ix := &CommitmentIndex{byUser: make(map[uint64]map[string][]uint64)}
	for _, row := range rows {
		dates := ix.byUser[row.UserID]
		if dates == nil {
			dates = make(map[string][]uint64)
			ix.byUser[row.UserID] = dates
		}
		dates[row.Date] = append(dates[row.Date], row.GroupID)
	}
	return ix
}

// CommittedInGroup 该用户这天在指定乐队有事件
func (ix *CommitmentIndex) CommittedInGroup(userID uint64, date string, groupID uint64) bool {
	for _, g := range ix.byUser[userID][date] {
		if g == groupID {
			return true
		}
	}
	return false
}

// CommittedElsewhere 该用户这天在别的乐队有事件
func (ix *CommitmentIndex) CommittedElsewhere(userID uint64, date string, groupID uint64) bool {
	for _, g := range ix.byUser[userID][date] {
		if g != groupID {
			return true
		}
	}
	return false
}

func (ix *CommitmentIndex) Committed(userID uint64, date string, groupID uint64) bool {
	return len(ix.byUser[userID][date]) > 0
}

// externalDates 收集给定用户在其他乐队被占用的所有日期，
// 这些日期也要参与整队可用性评估（可能被其他人/替补补齐）。
func (ix *CommitmentIndex) externalDates(userIDs map[uint64]bool, groupID uint64) []string {
	seen := make(map[string]bool)
	var out []string
	for userID, dates := range ix.byUser {
		if !userIDs[userID] {
			continue
		}
		for date, groups := range dates {
			if seen[date] {
				continue
			}
			for _, g := range groups {
				if g != groupID {
					seen[date] = true
					out = append(out, date)
					break
				}
			}
		}
	}
	return out
}
