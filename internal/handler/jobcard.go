package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hrcauto/workshop-backoffice/internal/model"
	"github.com/hrcauto/workshop-backoffice/internal/queue"
)

// JobCardHandler serves the intake endpoints. PublishEvent, when
// non-nil, is called after a successful intake; its error is ignored
// so a broker outage never fails the request.
type JobCardHandler struct {
	Intake       IntakeStore
	PublishEvent func(ctx context.Context, ev queue.JobCardCreatedEvent) error
}

func NewJobCardHandler(s IntakeStore) *JobCardHandler { return &JobCardHandler{Intake: s} }

type createJobCardReq struct {
	// job_no is still sent by older intake forms; the server assigns
	// the real number and this field is ignored.
	JobNo uint64 `json:"job_no"`

	FullName  string `json:"full_name"`
	PhoneNo   string `json:"phone_no"`
	OilCardNo string `json:"oil_card_no"`

	VinNo string `json:"vin_no"`
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  uint16 `json:"year"`
	Color string `json:"color"`
	RegNo string `json:"reg_no"`

	DateIn  string `json:"date_in"` // "YYYY-MM-DD", empty = today
	Mileage uint32 `json:"mileage"`
}

// Create records one intake event: resolve-or-create the client and
// vehicle, insert the job card, all in one transaction. The error text
// of a failed store call goes back to the caller verbatim; this is an
// internal tool and the staff paste it into bug reports.
func (h *JobCardHandler) Create(c echo.Context) error {
	var req createJobCardReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.PhoneNo = strings.TrimSpace(req.PhoneNo)
	req.VinNo = strings.TrimSpace(req.VinNo)
	if req.PhoneNo == "" || req.VinNo == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "phone_no and vin_no required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	jobNo, err := h.Intake.CreateIntake(ctx, model.Intake{
		FullName:  req.FullName,
		PhoneNo:   req.PhoneNo,
		OilCardNo: req.OilCardNo,
		VinNo:     req.VinNo,
		Make:      req.Make,
		Model:     req.Model,
		Year:      req.Year,
		Color:     req.Color,
		RegNo:     req.RegNo,
		DateIn:    req.DateIn,
		Mileage:   req.Mileage,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	if h.PublishEvent != nil {
		_ = h.PublishEvent(ctx, queue.JobCardCreatedEvent{
			JobNo:     jobNo,
			FullName:  req.FullName,
			PhoneNo:   req.PhoneNo,
			VinNo:     req.VinNo,
			Make:      req.Make,
			Model:     req.Model,
			RegNo:     req.RegNo,
			Mileage:   req.Mileage,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Success!",
		"job_no":  jobNo,
		"status":  "Job Card Created",
	})
}

// NextJobNo reports the advisory next job number for pre-filling the
// intake form. It reserves nothing; the insert assigns the real one.
func (h *JobCardHandler) NextJobNo(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	next, err := h.Intake.NextJobNo(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"nextId": next})
}
