package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "freelancehub/pkg/errors"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessEnvelope(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, Success(c, map[string]string{"hello": "world"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"hello":"world"`)
	assert.Contains(t, rec.Body.String(), `"timestamp"`)
}

func TestErrorMapsAppError(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, Error(c, apperrors.NotFound("Gig", nil)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
	assert.Contains(t, rec.Body.String(), "Gig not found")
}

func TestErrorMapsEchoHTTPError(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, Error(c, echo.NewHTTPError(http.StatusBadRequest, "malformed body")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "BAD_REQUEST")
	assert.Contains(t, rec.Body.String(), "malformed body")
}

func TestErrorHidesUnexpectedDetails(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, Error(c, assert.AnError))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestPaginatedTotalPages(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, Paginated(c, []int{1, 2, 3}, 45, 1, 20))

	assert.Contains(t, rec.Body.String(), `"total":45`)
	assert.Contains(t, rec.Body.String(), `"totalPages":3`)
}
