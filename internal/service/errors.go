package service

import "errors"

var (
	// ErrPermissionDenied 操作他人数据但既不是本人、管理员，也不是共同乐队的主力
	ErrPermissionDenied = errors.New("permission denied")
	// ErrEventOnDate 当天已有演出占用，不允许改空闲标记
	ErrEventOnDate = errors.New("cannot change availability on a date with a scheduled event")
	// ErrDateTaken 排期流程里一个乐队一天最多一个事件
	ErrDateTaken = errors.New("group already has an event on this date")
	// ErrDateNotAvailable 建事件选的日期不在整队可用集合里
	ErrDateNotAvailable = errors.New("group is not available on this date")
	// ErrMemberNotInGroup 引用的成员不属于该乐队，数据完整性问题，直接报错不跳过
	ErrMemberNotInGroup = errors.New("member does not belong to this group")
	// ErrMemberAlreadyLinked 占位成员已经关联过账号
	ErrMemberAlreadyLinked = errors.New("member already linked to a user")
)
