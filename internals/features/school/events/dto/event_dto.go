package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"ksms_backend/internals/features/school/events/model"
	helper "ksms_backend/internals/helpers"
)

const dateLayout = "2006-01-02"

/* =========================================================
   PARSING
   ========================================================= */

func parseDate(field, raw string) (datatypes.Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return datatypes.Date{}, helper.InvalidField(field, "must be a date (YYYY-MM-DD)")
	}
	return datatypes.Date(t), nil
}

// parseClock accepts HH:MM or HH:MM:SS.
func parseClock(field, raw string) (datatypes.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0), nil
		}
	}
	return 0, helper.InvalidField(field, "must be a time (HH:MM or HH:MM:SS)")
}

func checkWindow(start, end datatypes.Time) error {
	if end <= start {
		return helper.InvalidField("end_time", "must be after start_time")
	}
	return nil
}

/* =========================================================
   CREATE
   ========================================================= */

type CreateEventRequest struct {
	Name        string  `json:"name"        form:"name"        validate:"required,max=200"`
	Description *string `json:"description" form:"description"`
	Date        string  `json:"date"        form:"date"        validate:"required"`
	StartTime   string  `json:"start_time"  form:"start_time"  validate:"required"`
	EndTime     string  `json:"end_time"    form:"end_time"    validate:"required"`
}

func (r CreateEventRequest) ToModel() (*model.EventModel, error) {
	r.Name = strings.TrimSpace(r.Name)
	if err := helper.ValidateStruct(r); err != nil {
		return nil, err
	}
	date, dErr := parseDate("date", r.Date)
	start, sErr := parseClock("start_time", r.StartTime)
	end, eErr := parseClock("end_time", r.EndTime)
	if err := helper.JoinPatchErrors(dErr, sErr, eErr); err != nil {
		return nil, err
	}
	if err := checkWindow(start, end); err != nil {
		return nil, err
	}
	return &model.EventModel{
		Name:        r.Name,
		Description: r.Description,
		Date:        date,
		StartTime:   start,
		EndTime:     end,
	}, nil
}

/* =========================================================
   PATCH
   ========================================================= */

type UpdateEventRequest struct {
	Name        helper.PatchField[string] `json:"name"`
	Description helper.PatchField[string] `json:"description"`
	Date        helper.PatchField[string] `json:"date"`
	StartTime   helper.PatchField[string] `json:"start_time"`
	EndTime     helper.PatchField[string] `json:"end_time"`
}

func (p UpdateEventRequest) ApplyTo(e *model.EventModel) error {
	name := e.Name
	var date, start, end string
	errs := []error{
		p.Name.Apply("name", &name),
		p.Date.Apply("date", &date),
		p.StartTime.Apply("start_time", &start),
		p.EndTime.Apply("end_time", &end),
	}
	if err := helper.JoinPatchErrors(errs...); err != nil {
		return err
	}
	if name = strings.TrimSpace(name); name == "" {
		return helper.InvalidField("name", "is required")
	}
	e.Name = name
	p.Description.ApplyNullable(&e.Description)

	if p.Date.Present {
		d, err := parseDate("date", date)
		if err != nil {
			return err
		}
		e.Date = d
	}
	if p.StartTime.Present {
		t, err := parseClock("start_time", start)
		if err != nil {
			return err
		}
		e.StartTime = t
	}
	if p.EndTime.Present {
		t, err := parseClock("end_time", end)
		if err != nil {
			return err
		}
		e.EndTime = t
	}
	return checkWindow(e.StartTime, e.EndTime)
}

/* =========================================================
   RESPONSE
   ========================================================= */

type EventResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	IsDeleted   bool      `json:"is_deleted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromModel(m *model.EventModel) EventResponse {
	return EventResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Date:        time.Time(m.Date).Format(dateLayout),
		StartTime:   m.StartTime.String(),
		EndTime:     m.EndTime.String(),
		IsDeleted:   m.DeletedAt.Valid,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromModels(ms []model.EventModel) []EventResponse {
	out := make([]EventResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
