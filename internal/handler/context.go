package handler

type ContextKey string

var (
	RoleCtxKey    ContextKey = "role"
	SubCtxKey     ContextKey = "sub"
	MyInfoCtx     ContextKey = "myInfo"
	ShiftCtx      ContextKey = "shift"
	EventCtx      ContextKey = "event"
	MonitorLogCtx ContextKey = "monitorLog"
)
