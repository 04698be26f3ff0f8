package handler

import "github.com/gin-gonic/gin"

type Handlers struct {
	Sync     *SyncHandler
	Schedule *ScheduleHandler
	Action   *ActionHandler
	Alert    *AlertHandler
	Push     *PushHandler
}

func RegisterRoutes(v1 *gin.RouterGroup, h Handlers) {
	v1.POST("/lifecycle/foreground", h.Sync.HandleForeground)
	v1.POST("/sync", h.Sync.HandleManual)
	v1.GET("/sync", h.Sync.HandleStatus)

	v1.GET("/schedules", h.Schedule.HandleList)
	v1.POST("/schedules", h.Schedule.HandleCreate)
	v1.GET("/schedules/upcoming", h.Schedule.HandleUpcoming)
	v1.POST("/schedules/log", h.Action.HandleLog)
	v1.GET("/schedules/log", h.Action.HandleInFlight)
	v1.GET("/schedules/:id", h.Schedule.HandleGet)
	v1.PUT("/schedules/:id", h.Schedule.HandleUpdate)
	v1.DELETE("/schedules/:id", h.Schedule.HandleDelete)
	v1.GET("/schedules/:id/next", h.Schedule.HandleNext)

	v1.GET("/alerts", h.Alert.HandleList)
	v1.POST("/alerts/response", h.Alert.HandleResponse)
	v1.GET("/alerts/permission", h.Alert.HandleGetPermission)
	v1.PUT("/alerts/permission", h.Alert.HandleSetPermission)

	v1.POST("/push/register", h.Push.HandleRegister)
}
