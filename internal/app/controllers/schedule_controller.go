package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vmelnyk/timetable/internal/app/models"
	"github.com/vmelnyk/timetable/internal/app/models/dto"
	"github.com/vmelnyk/timetable/internal/app/services"
	"github.com/vmelnyk/timetable/internal/middleware"
)

// ScheduleController handles schedule-related operations
type ScheduleController struct {
	scheduleService *services.ScheduleService
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService *services.ScheduleService) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

// CreateSchedule places a lesson into a weekly slot
// @Summary Create a schedule entry
// @Description Places a lesson into a weekly slot; rejected when the group already has a lesson on an intersecting week parity
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateScheduleRequest true "Slot placement"
// @Success 201 {object} dto.APIResponse{data=dto.ScheduleDTO} "Schedule created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Referenced entity not found"
// @Failure 409 {object} dto.ErrorResponse "Group already occupied at the slot"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules [post]
func (c *ScheduleController) CreateSchedule(ctx *gin.Context) {
	var req dto.CreateScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	schedule, err := c.scheduleService.Save(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success:   true,
		Data:      dto.NewScheduleDTO(schedule),
		Timestamp: time.Now(),
	})
}

// UpdateSchedule moves an existing schedule entry
// @Summary Update a schedule entry
// @Description Moves an existing schedule entry to another slot under the same conflict rules
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Param request body dto.CreateScheduleRequest true "New slot placement"
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleDTO} "Schedule updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Failure 409 {object} dto.ErrorResponse "Group already occupied at the slot"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/{id} [put]
func (c *ScheduleController) UpdateSchedule(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "Schedule ID")
	if !ok {
		return
	}
	var req dto.CreateScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	schedule, err := c.scheduleService.Update(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      dto.NewScheduleDTO(schedule),
		Timestamp: time.Now(),
	})
}

// DeleteSchedule removes a schedule entry
// @Summary Delete a schedule entry
// @Description Removes a schedule entry by ID
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Success 200 {object} dto.APIResponse "Schedule deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid schedule ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/{id} [delete]
func (c *ScheduleController) DeleteSchedule(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "Schedule ID")
	if !ok {
		return
	}
	if err := c.scheduleService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Message:   "Schedule deleted",
		Timestamp: time.Now(),
	})
}

// DeleteSchedulesBySemester removes every schedule of a semester
// @Summary Delete all schedules of a semester
// @Description Removes every schedule entry belonging to the semester
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param semesterId path int true "Semester ID"
// @Success 200 {object} dto.APIResponse "Schedules deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid semester ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Semester not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/semester/{semesterId} [delete]
func (c *ScheduleController) DeleteSchedulesBySemester(ctx *gin.Context) {
	semesterID, ok := pathID(ctx, "semesterId", "Semester ID")
	if !ok {
		return
	}
	deleted, err := c.scheduleService.DeleteBySemester(ctx, semesterID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      gin.H{"deleted": deleted},
		Timestamp: time.Now(),
	})
}

// GetScheduleByID retrieves a schedule entry by ID
// @Summary Get schedule by ID
// @Tags schedules
// @Produce json
// @Param id path int true "Schedule ID"
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleDTO} "Schedule retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid schedule ID"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/{id} [get]
func (c *ScheduleController) GetScheduleByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "Schedule ID")
	if !ok {
		return
	}
	schedule, err := c.scheduleService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewScheduleDTO(schedule)))
}

// GetAllSchedules retrieves every schedule entry
// @Summary Get all schedules
// @Tags schedules
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.ScheduleDTO} "Schedules retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules [get]
func (c *ScheduleController) GetAllSchedules(ctx *gin.Context) {
	schedules, err := c.scheduleService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewScheduleDTOs(schedules)))
}

// GetSchedulesBySemester retrieves the active schedules of a semester
// @Summary Get schedules by semester
// @Tags schedules
// @Produce json
// @Param semesterId path int true "Semester ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ScheduleDTO} "Schedules retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid semester ID"
// @Failure 404 {object} dto.ErrorResponse "Semester not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/semester/{semesterId} [get]
func (c *ScheduleController) GetSchedulesBySemester(ctx *gin.Context) {
	semesterID, ok := pathID(ctx, "semesterId", "Semester ID")
	if !ok {
		return
	}
	schedules, err := c.scheduleService.GetSchedulesBySemester(ctx, semesterID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewScheduleDTOs(schedules)))
}

// GetInfoForCreatingSchedule reports slot availability for a placement
// @Summary Get slot placement info
// @Description Checks a candidate slot: hard-rejects a group conflict, reports teacher availability, free rooms and wish fit
// @Tags schedules
// @Produce json
// @Param semesterId query int true "Semester ID"
// @Param dayOfWeek query string true "Day of week" Enums(MONDAY, TUESDAY, WEDNESDAY, THURSDAY, FRIDAY, SATURDAY, SUNDAY)
// @Param evenOdd query string true "Week parity" Enums(EVEN, ODD, WEEKLY)
// @Param classId query int true "Period ID"
// @Param lessonId query int true "Lesson ID"
// @Success 200 {object} dto.APIResponse{data=dto.CreateScheduleInfoDTO} "Slot info retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 404 {object} dto.ErrorResponse "Referenced entity not found"
// @Failure 409 {object} dto.ErrorResponse "Group already occupied at the slot"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/info [get]
func (c *ScheduleController) GetInfoForCreatingSchedule(ctx *gin.Context) {
	semesterID, ok := queryID(ctx, "semesterId")
	if !ok {
		return
	}
	periodID, ok := queryID(ctx, "classId")
	if !ok {
		return
	}
	lessonID, ok := queryID(ctx, "lessonId")
	if !ok {
		return
	}

	day := models.DayOfWeek(ctx.Query("dayOfWeek"))
	if !day.Valid() {
		badQueryParam(ctx, "dayOfWeek")
		return
	}
	parity := models.Parity(ctx.Query("evenOdd"))
	if !parity.Valid() {
		badQueryParam(ctx, "evenOdd")
		return
	}

	info, err := c.scheduleService.GetInfoForCreatingSchedule(ctx, semesterID, day, parity, periodID, lessonID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(info))
}

// GetScheduleForGroup assembles the typical-week view of a group
// @Summary Get full schedule for a group
// @Tags schedules
// @Produce json
// @Param groupId path int true "Group ID"
// @Param semesterId query int true "Semester ID"
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleForGroupDTO} "Schedule retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters"
// @Failure 404 {object} dto.ErrorResponse "Group or semester not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/group/{groupId} [get]
func (c *ScheduleController) GetScheduleForGroup(ctx *gin.Context) {
	groupID, ok := pathID(ctx, "groupId", "Group ID")
	if !ok {
		return
	}
	semesterID, ok := queryID(ctx, "semesterId")
	if !ok {
		return
	}
	schedule, err := c.scheduleService.GetFullScheduleForGroup(ctx, semesterID, groupID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(schedule))
}

// GetFullSchedule assembles the typical-week view of every group
// @Summary Get full schedule for a semester
// @Tags schedules
// @Produce json
// @Param semesterId path int true "Semester ID"
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleFullDTO} "Schedule retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid semester ID"
// @Failure 404 {object} dto.ErrorResponse "Semester not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/semester/{semesterId}/full [get]
func (c *ScheduleController) GetFullSchedule(ctx *gin.Context) {
	semesterID, ok := pathID(ctx, "semesterId", "Semester ID")
	if !ok {
		return
	}
	schedule, err := c.scheduleService.GetFullScheduleForSemester(ctx, semesterID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(schedule))
}

// GetScheduleForTeacher assembles the typical-week view of a teacher
// @Summary Get full schedule for a teacher
// @Tags schedules
// @Produce json
// @Param teacherId path int true "Teacher ID"
// @Param semesterId query int true "Semester ID"
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleForTeacherDTO} "Schedule retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters"
// @Failure 404 {object} dto.ErrorResponse "Teacher or semester not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/teacher/{teacherId} [get]
func (c *ScheduleController) GetScheduleForTeacher(ctx *gin.Context) {
	teacherID, ok := pathID(ctx, "teacherId", "Teacher ID")
	if !ok {
		return
	}
	semesterID, ok := queryID(ctx, "semesterId")
	if !ok {
		return
	}
	schedule, err := c.scheduleService.GetScheduleForTeacher(ctx, semesterID, teacherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(schedule))
}

// GetScheduleForRooms assembles per-room weekly occupancy
// @Summary Get room occupancy for a semester
// @Tags schedules
// @Produce json
// @Param semesterId query int true "Semester ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ScheduleForRoomDTO} "Room occupancy retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid semester ID"
// @Failure 404 {object} dto.ErrorResponse "Semester not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/rooms [get]
func (c *ScheduleController) GetScheduleForRooms(ctx *gin.Context) {
	semesterID, ok := queryID(ctx, "semesterId")
	if !ok {
		return
	}
	rooms, err := c.scheduleService.GetScheduleForRooms(ctx, semesterID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(rooms))
}

// GetScheduleByDateRange expands a teacher's schedule into dated occurrences
// @Summary Get dated schedule for a teacher
// @Description Expands the teacher's weekly schedule into concrete dates over the range, honoring week parity
// @Tags schedules
// @Produce json
// @Param teacherId path int true "Teacher ID"
// @Param from query string true "Range start (inclusive)" example(2021-09-06)
// @Param to query string true "Range end (inclusive)" example(2021-09-20)
// @Success 200 {object} dto.APIResponse{data=[]dto.DailyAgendaDTO} "Schedule retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/teacher/{teacherId}/dates [get]
func (c *ScheduleController) GetScheduleByDateRange(ctx *gin.Context) {
	teacherID, ok := pathID(ctx, "teacherId", "Teacher ID")
	if !ok {
		return
	}
	from, to, ok := queryDateRange(ctx)
	if !ok {
		return
	}
	agendas, err := c.scheduleService.ScheduleByDateRangeForTeacher(ctx, from, to, teacherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(agendas))
}

// GetActualScheduleByDateRange is GetScheduleByDateRange with overrides applied
// @Summary Get dated schedule for a teacher with overrides
// @Description Like the dated schedule, but one-date replacements and vacations are merged onto the affected occurrences
// @Tags schedules
// @Produce json
// @Param teacherId path int true "Teacher ID"
// @Param from query string true "Range start (inclusive)" example(2021-09-06)
// @Param to query string true "Range end (inclusive)" example(2021-09-20)
// @Success 200 {object} dto.APIResponse{data=[]dto.DailyAgendaDTO} "Schedule retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/teacher/{teacherId}/dates/actual [get]
func (c *ScheduleController) GetActualScheduleByDateRange(ctx *gin.Context) {
	teacherID, ok := pathID(ctx, "teacherId", "Teacher ID")
	if !ok {
		return
	}
	from, to, ok := queryDateRange(ctx)
	if !ok {
		return
	}
	agendas, err := c.scheduleService.TemporaryScheduleByDateRangeForTeacher(ctx, from, to, teacherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(agendas))
}

// GetTemporarySchedules lists raw one-date overrides for a teacher
// @Summary Get temporary schedules for a teacher
// @Description Lists the one-date overrides bound to the teacher's schedules in the range, plus the vacations falling inside it
// @Tags temporary-schedules
// @Produce json
// @Param teacherId path int true "Teacher ID"
// @Param from query string true "Range start (inclusive)" example(2021-09-06)
// @Param to query string true "Range end (inclusive)" example(2021-09-20)
// @Success 200 {object} dto.APIResponse{data=[]dto.TemporaryScheduleDTO} "Temporary schedules retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /temporary-schedules/teacher/{teacherId} [get]
func (c *ScheduleController) GetTemporarySchedules(ctx *gin.Context) {
	teacherID, ok := pathID(ctx, "teacherId", "Teacher ID")
	if !ok {
		return
	}
	from, to, ok := queryDateRange(ctx)
	if !ok {
		return
	}
	overrides, err := c.scheduleService.TemporarySchedulesForTeacher(ctx, from, to, teacherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	out := make([]dto.TemporaryScheduleDTO, 0, len(overrides))
	for _, ts := range overrides {
		out = append(out, *dto.NewTemporaryScheduleDTO(ts))
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(out))
}

func pathID(ctx *gin.Context, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+label)
		detail = detail.WithDetails(label + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return 0, false
	}
	return id, true
}

func queryID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Query(name), 10, 64)
	if err != nil || id <= 0 {
		badQueryParam(ctx, name)
		return 0, false
	}
	return id, true
}

func queryDateRange(ctx *gin.Context) (from, to time.Time, ok bool) {
	from, err := time.Parse(dto.DateFormat, ctx.Query("from"))
	if err != nil {
		badQueryParam(ctx, "from")
		return time.Time{}, time.Time{}, false
	}
	to, err = time.Parse(dto.DateFormat, ctx.Query("to"))
	if err != nil {
		badQueryParam(ctx, "to")
		return time.Time{}, time.Time{}, false
	}
	if to.Before(from) {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid date range")
		detail = detail.WithDetails("'to' must not be before 'from'")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func badQueryParam(ctx *gin.Context, name string) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid query parameter")
	detail = detail.WithField(name)
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}
