package apierrors

const (
	MsgInternalError         = "internalError"
	MsgInvalidPagination     = "invalidPagination"
	MsgInvalidFilter         = "invalidFilter"
	MsgInvalidTaskPayload    = "invalidTaskPayload"
	MsgInvalidUserPayload    = "invalidUserPayload"
	MsgTaskNotFound          = "taskNotFound"
	MsgTasksNotFound         = "tasksNotFound"
	MsgUserNotFound          = "userNotFound"
	MsgTaskNotAssignable     = "taskNotAssignable"
	MsgTaskNotAssignedToUser = "taskNotAssignedToUser"
	MsgTaskAlreadyCompleted  = "taskAlreadyCompleted"
	MsgRouteNotFound         = "routeNotFound"
)
