package domain

type CtxKey string

const (
	KeySessionID CtxKey = "SessionID"
	KeyToken     CtxKey = "Token"
	KeyRequestID CtxKey = "RequestID"
	KeySession   CtxKey = "Session"
)
