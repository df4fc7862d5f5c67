package quick_book

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viamente/booking-service/internal/api/handlers"
	quickBook "github.com/viamente/booking-service/internal/usecase/quick_book"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	resp *quickBook.Response
	err  error
}

func (s *stubUseCase) Execute(context.Context, *quickBook.Request) (*quickBook.Response, error) {
	return s.resp, s.err
}

func doRequest(t *testing.T, uc QuickBookUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/appointments/quick-book",
		bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	NewHandler(uc, testLogger{}).Handle(rec, req)
	return rec
}

const validBody = `{
	"patientName": "Maria Silva",
	"psychologistId": 1,
	"roomId": 1,
	"date": "2024-06-03",
	"startTime": "09:00",
	"endTime": "10:00"
}`

func TestHandle_ConflictReturnsLocalizedMessage(t *testing.T) {
	rec := doRequest(t, &stubUseCase{err: quickBook.ErrPsychologistUnavailable}, validBody)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "o psicólogo já possui uma consulta neste horário", resp.Error)
}

func TestHandle_RoomConflict(t *testing.T) {
	rec := doRequest(t, &stubUseCase{err: quickBook.ErrRoomUnavailable}, validBody)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_NotFoundMapping(t *testing.T) {
	rec := doRequest(t, &stubUseCase{err: quickBook.ErrPsychologistNotFound}, validBody)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, &stubUseCase{err: quickBook.ErrRoomNotFound}, validBody)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_BadDateAndTime(t *testing.T) {
	badDate := `{"patientName":"x","psychologistId":1,"roomId":1,"date":"03/06/2024","startTime":"09:00","endTime":"10:00"}`
	rec := doRequest(t, &stubUseCase{}, badDate)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	badTime := `{"patientName":"x","psychologistId":1,"roomId":1,"date":"2024-06-03","startTime":"9am","endTime":"10:00"}`
	rec = doRequest(t, &stubUseCase{}, badTime)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, msgInvalidTime, resp.Error)
}

func TestHandle_MalformedBody(t *testing.T) {
	rec := doRequest(t, &stubUseCase{}, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	rec := doRequest(t, &stubUseCase{err: quickBook.ErrInternal}, validBody)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
