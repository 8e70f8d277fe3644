package reminders

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"edukasi.ai/edu-api-gateway/app/domain/auth"
	"edukasi.ai/edu-api-gateway/app/domain/otp"
	"edukasi.ai/edu-api-gateway/app/domain/ratelimit"
	"edukasi.ai/edu-api-gateway/app/domain/reminder"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/responses"
)

type RemindersRoute struct {
	authService     *auth.AuthService
	reminderService *reminder.ReminderService
}

func NewRemindersRoute(
	authService *auth.AuthService,
	reminderService *reminder.ReminderService,
) *RemindersRoute {
	return &RemindersRoute{
		authService:     authService,
		reminderService: reminderService,
	}
}

func (remindersRoute *RemindersRoute) RegisterRouter(router gin.IRouter) {
	remindersRouter := router.Group("/reminders",
		remindersRoute.authService.JWTAuthMiddleware(),
		remindersRoute.authService.RegisteredUserMiddleware(),
	)
	remindersRouter.POST("/request-otp", remindersRoute.RequestCreateOTP)
	remindersRouter.POST("", remindersRoute.ConfirmCreate)
	remindersRouter.POST("/delete/request-otp", remindersRoute.RequestDeleteOTP)
	remindersRouter.POST("/delete", remindersRoute.ConfirmDelete)
}

type RequestOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (remindersRoute *RemindersRoute) RequestCreateOTP(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req RequestOTPRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code: "7e20b5d4-9c63-48fa-a1e8-05d7f3c6b291",
		})
		return
	}

	if err := remindersRoute.reminderService.RequestCreateOTP(ctx, req.Email); err != nil {
		remindersRoute.writeOTPError(reqCtx, otp.PurposeReminderCreate, req.Email, err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[string]{
		Status: responses.ResponseCodeOk,
		Result: "otp sent",
	})
}

type ConfirmCreateRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Code         string `json:"code" binding:"required"`
	ReminderTime string `json:"reminder_time" binding:"required"`
}

type ReminderResponse struct {
	Email        string `json:"email"`
	ReminderTime string `json:"reminder_time"`
	IsActive     bool   `json:"is_active"`
}

func (remindersRoute *RemindersRoute) ConfirmCreate(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	userEntity, _ := auth.GetUserFromContext(reqCtx)

	var req ConfirmCreateRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code: "db38c1f6-04a9-47e2-b6d5-83f0e92a7c14",
		})
		return
	}

	created, err := remindersRoute.reminderService.ConfirmCreate(ctx, userEntity.ID, req.Email, req.Code, req.ReminderTime)
	if err != nil {
		remindersRoute.writeOTPError(reqCtx, otp.PurposeReminderCreate, req.Email, err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[ReminderResponse]{
		Status: responses.ResponseCodeOk,
		Result: ReminderResponse{
			Email:        created.Email,
			ReminderTime: created.ReminderTime,
			IsActive:     created.IsActive,
		},
	})
}

func (remindersRoute *RemindersRoute) RequestDeleteOTP(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	userEntity, _ := auth.GetUserFromContext(reqCtx)

	var req RequestOTPRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code: "2a95d7e0-6bc4-41f8-93a2-e07d5f8c1b63",
		})
		return
	}

	if err := remindersRoute.reminderService.RequestDeleteOTP(ctx, userEntity.ID, req.Email); err != nil {
		remindersRoute.writeOTPError(reqCtx, otp.PurposeReminderDelete, req.Email, err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[string]{
		Status: responses.ResponseCodeOk,
		Result: "otp sent",
	})
}

type ConfirmDeleteRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

func (remindersRoute *RemindersRoute) ConfirmDelete(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	userEntity, _ := auth.GetUserFromContext(reqCtx)

	var req ConfirmDeleteRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code: "60f3b8a5-d217-4c90-8e64-1b5a9f0d7e32",
		})
		return
	}

	if err := remindersRoute.reminderService.ConfirmDelete(ctx, userEntity.ID, req.Email, req.Code); err != nil {
		remindersRoute.writeOTPError(reqCtx, otp.PurposeReminderDelete, req.Email, err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[string]{
		Status: responses.ResponseCodeOk,
		Result: "reminder deleted",
	})
}

func (remindersRoute *RemindersRoute) writeOTPError(reqCtx *gin.Context, purpose, email string, err error) {
	var cooldown *ratelimit.CooldownError
	switch {
	case errors.As(err, &cooldown):
		reqCtx.Header("Retry-After", strconv.Itoa(int(math.Ceil(cooldown.RetryAfter.Seconds()))))
		reqCtx.JSON(http.StatusTooManyRequests, responses.ErrorResponse{
			Code:  "4b07e9c2-f538-4da6-91b0-c62e8a5f1d74",
			Error: cooldown.Error(),
		})
	case errors.Is(err, otp.ErrTooManyAttempts):
		reqCtx.JSON(http.StatusTooManyRequests, responses.ErrorResponse{
			Code:  "a8d41f60-27cb-4e95-b3d8-50f9e2c7a416",
			Error: err.Error(),
		})
	case errors.Is(err, otp.ErrMismatch):
		remaining := remindersRoute.reminderService.RemainingAttempts(purpose, email)
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "4f8a2c61-0d95-43be-87f3-6e1b2d0c9a57",
			Error: fmt.Sprintf("%s, %d attempts remaining", err.Error(), remaining),
		})
	case errors.Is(err, otp.ErrExpired), errors.Is(err, otp.ErrNotFound):
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "e5c20d93-8b47-4f61-a0e2-d78c1f5b6a09",
			Error: err.Error(),
		})
	case errors.Is(err, reminder.ErrInvalidTime):
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "31f6a0d8-c592-4e74-b8a1-06e3d9f5c287",
			Error: err.Error(),
		})
	case errors.Is(err, reminder.ErrNotFound):
		reqCtx.JSON(http.StatusNotFound, responses.ErrorResponse{
			Code:  "90b7e4f2-5dc1-4836-a5f9-e21d0c8b7a53",
			Error: err.Error(),
		})
	default:
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "fc52a7d0-1e84-4b39-9c67-308f5e6d2ab1",
			Error: err.Error(),
		})
	}
}
