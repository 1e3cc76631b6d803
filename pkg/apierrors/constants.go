package apierrors

const (
	MsgInvalidStatusFilter = "invalidStatusFilter"
	MsgInvalidStatus       = "invalidStatus"
	MsgTitleRequired       = "titleRequired"
	MsgTaskNotFound        = "taskNotFound"
	MsgInvalidTaskPayload  = "invalidTaskPayload"
	MsgInternalError       = "internalError"
	MsgRouteNotFound       = "routeNotFound"

	MsgTaskDeleted = "taskDeleted"
)
