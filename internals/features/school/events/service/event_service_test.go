package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ksms_backend/internals/features/school/events/dto"
	"ksms_backend/internals/features/school/events/model"
	helper "ksms_backend/internals/helpers"
	"ksms_backend/internals/testutil"
)

func newService(t *testing.T) *EventService {
	t.Helper()
	return NewEventService(testutil.NewDB(t, &model.EventModel{}))
}

func TestCreate_ParsesDateAndTimes(t *testing.T) {
	svc := newService(t)
	e, err := svc.Create(context.Background(), dto.CreateEventRequest{
		Name: "Sports day", Date: "2026-03-14", StartTime: "09:00", EndTime: "15:30:00",
	})
	require.NoError(t, err)

	res := dto.FromModel(e)
	assert.Equal(t, "2026-03-14", res.Date)
	assert.Equal(t, "09:00:00", res.StartTime)
	assert.Equal(t, "15:30:00", res.EndTime)
}

func TestCreate_RejectsBadWindow(t *testing.T) {
	svc := newService(t)
	_, err := svc.Create(context.Background(), dto.CreateEventRequest{
		Name: "Backwards", Date: "2026-03-14", StartTime: "10:00", EndTime: "09:00",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, helper.ErrValidation))

	_, err = svc.Create(context.Background(), dto.CreateEventRequest{
		Name: "Bad", Date: "14/03/2026", StartTime: "nine", EndTime: "10:00",
	})
	require.Error(t, err)
	var ae *helper.AppError
	require.True(t, errors.As(err, &ae))
	assert.Contains(t, ae.Fields, "date")
	assert.Contains(t, ae.Fields, "start_time")
}

func TestList_OrderedByDate(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	for _, d := range []string{"2026-05-01", "2026-01-10", "2026-03-02"} {
		_, err := svc.Create(ctx, dto.CreateEventRequest{Name: d, Date: d, StartTime: "08:00", EndTime: "09:00"})
		require.NoError(t, err)
	}

	rows, total, err := svc.List(ctx, helper.Paging{}, "", "")
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, rows, 3)
	assert.Equal(t, "2026-01-10", rows[0].Name)
	assert.Equal(t, "2026-05-01", rows[2].Name)
}

func TestUpdate_KeepsWindowValid(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	e, err := svc.Create(ctx, dto.CreateEventRequest{Name: "Exam", Date: "2026-06-01", StartTime: "08:00", EndTime: "10:00"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, e.ID, dto.UpdateEventRequest{EndTime: helper.Set("07:00")})
	assert.True(t, errors.Is(err, helper.ErrValidation))

	desc := "Bring a pencil"
	got, err := svc.Update(ctx, e.ID, dto.UpdateEventRequest{
		Description: helper.Set(desc),
		EndTime:     helper.Set("11:00"),
	})
	require.NoError(t, err)
	require.NotNil(t, got.Description)
	assert.Equal(t, desc, *got.Description)
	assert.Equal(t, "11:00:00", got.EndTime.String())
	assert.Equal(t, "Exam", got.Name)

	got, err = svc.Update(ctx, e.ID, dto.UpdateEventRequest{Description: helper.Null[string]()})
	require.NoError(t, err)
	assert.Nil(t, got.Description)
}
