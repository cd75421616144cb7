package bindhttp_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bindhttp/bindhttp/pkg/bindhttp"
)

type pathRequest struct {
	ItemID int `path:"item_id"`
}

type boundedPathRequest struct {
	ItemID int    `path:"item_id" validate:"gte=1"`
	Query  string `query:"q" validate:"required"`
}

type pagedRequest struct {
	Skip  int  `query:"skip" default:"0" validate:"gte=0"`
	Limit int  `query:"limit" default:"10" validate:"gte=0"`
	Short bool `query:"short" default:"false"`
}

type patternRequest struct {
	Query string `query:"q" pattern:"^fixedquery$" validate:"omitempty,min=3,max=50"`
}

type requiredRequest struct {
	Needy string `query:"needy" validate:"required"`
}

type aliasRequest struct {
	Query string `query:"item-query"`
}

type listRequest struct {
	Query []string `query:"q"`
}

type itemSchema struct {
	Name  string   `json:"name" validate:"required"`
	Price float64  `json:"price" validate:"required"`
	Tax   *float64 `json:"tax,omitempty"`
}

type wholeBodyRequest struct {
	ItemID int `path:"item_id"`
	itemSchema
}

type multiBodyRequest struct {
	ItemID     int        `path:"item_id"`
	Item       itemSchema `json:"item" validate:"required"`
	Importance int        `json:"importance" validate:"required"`
}

func fieldErrors(t *testing.T, err error) []bindhttp.FieldError {
	t.Helper()
	var valErr *bindhttp.ValidationError
	require.ErrorAs(t, err, &valErr)

	return valErr.Fields
}

func TestDecoder_PathInteger(t *testing.T) {
	decoder := bindhttp.NewDecoder[pathRequest](bindhttp.DefaultValidator())

	req := httptest.NewRequest("GET", "/items/5", nil)
	req.SetPathValue("item_id", "5")

	result, err := decoder.Decode(req)
	require.NoError(t, err)
	assert.Equal(t, 5, result.ItemID)
}

func TestDecoder_PathIntegerRejectsNonNumeric(t *testing.T) {
	decoder := bindhttp.NewDecoder[pathRequest](bindhttp.DefaultValidator())

	req := httptest.NewRequest("GET", "/items/foo", nil)
	req.SetPathValue("item_id", "foo")

	_, err := decoder.Decode(req)
	fields := fieldErrors(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "path", fields[0].Location)
	assert.Equal(t, "item_id", fields[0].Field)
	assert.Equal(t, "type", fields[0].Constraint)
	assert.Equal(t, "foo", fields[0].Value)
}

func TestDecoder_PathLowerBound(t *testing.T) {
	decoder := bindhttp.NewDecoder[boundedPathRequest](bindhttp.DefaultValidator())

	req := httptest.NewRequest("GET", "/path-ge/0?q=test", nil)
	req.SetPathValue("item_id", "0")

	_, err := decoder.Decode(req)
	fields := fieldErrors(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "path", fields[0].Location)
	assert.Equal(t, "item_id", fields[0].Field)
	assert.Equal(t, "gte=1", fields[0].Constraint)
}

func TestDecoder_QueryDefaults(t *testing.T) {
	decoder := bindhttp.NewDecoder[pagedRequest](bindhttp.DefaultValidator())

	result, err := decoder.Decode(httptest.NewRequest("GET", "/items/", nil))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Skip)
	assert.Equal(t, 10, result.Limit)
	assert.False(t, result.Short)
}

func TestDecoder_QueryOverridesDefaults(t *testing.T) {
	decoder := bindhttp.NewDecoder[pagedRequest](bindhttp.DefaultValidator())

	result, err := decoder.Decode(httptest.NewRequest("GET", "/items/?skip=2&limit=3&short=true", nil))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Skip)
	assert.Equal(t, 3, result.Limit)
	assert.True(t, result.Short)
}

func TestDecoder_QueryNegativeBoundRejected(t *testing.T) {
	decoder := bindhttp.NewDecoder[pagedRequest](bindhttp.DefaultValidator())

	_, err := decoder.Decode(httptest.NewRequest("GET", "/items/?skip=-1", nil))
	fields := fieldErrors(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "query", fields[0].Location)
	assert.Equal(t, "skip", fields[0].Field)
	assert.Equal(t, "gte=0", fields[0].Constraint)
}

func TestDecoder_Pattern(t *testing.T) {
	decoder := bindhttp.NewDecoder[patternRequest](bindhttp.DefaultValidator())

	t.Run("matching value accepted", func(t *testing.T) {
		result, err := decoder.Decode(httptest.NewRequest("GET", "/?q=fixedquery", nil))
		require.NoError(t, err)
		assert.Equal(t, "fixedquery", result.Query)
	})

	t.Run("non-matching value rejected", func(t *testing.T) {
		_, err := decoder.Decode(httptest.NewRequest("GET", "/?q=foo", nil))
		fields := fieldErrors(t, err)
		require.Len(t, fields, 1)
		assert.Equal(t, "query", fields[0].Location)
		assert.Equal(t, "q", fields[0].Field)
		assert.Equal(t, "pattern=^fixedquery$", fields[0].Constraint)
		assert.Equal(t, "foo", fields[0].Value)
	})

	t.Run("absent optional value accepted", func(t *testing.T) {
		result, err := decoder.Decode(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Empty(t, result.Query)
	})
}

func TestDecoder_RequiredQueryMissing(t *testing.T) {
	decoder := bindhttp.NewDecoder[requiredRequest](bindhttp.DefaultValidator())

	_, err := decoder.Decode(httptest.NewRequest("GET", "/req-items/5", nil))
	fields := fieldErrors(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "query", fields[0].Location)
	assert.Equal(t, "needy", fields[0].Field)
	assert.Equal(t, "required", fields[0].Constraint)
}

func TestDecoder_AliasedQueryKey(t *testing.T) {
	decoder := bindhttp.NewDecoder[aliasRequest](bindhttp.DefaultValidator())

	result, err := decoder.Decode(httptest.NewRequest("GET", "/?item-query=books", nil))
	require.NoError(t, err)
	assert.Equal(t, "books", result.Query)
}

func TestDecoder_RepeatedQueryKey(t *testing.T) {
	decoder := bindhttp.NewDecoder[listRequest](bindhttp.DefaultValidator())

	result, err := decoder.Decode(httptest.NewRequest("GET", "/?q=foo&q=bar", nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar"}, result.Query)
}

func TestDecoder_WholeBody(t *testing.T) {
	decoder := bindhttp.NewDecoder[wholeBodyRequest](bindhttp.DefaultValidator())

	body := `{"name":"Foo","price":42.5,"tax":3.2}`
	req := httptest.NewRequest("PUT", "/items/7", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("item_id", "7")

	result, err := decoder.Decode(req)
	require.NoError(t, err)
	assert.Equal(t, 7, result.ItemID)
	assert.Equal(t, "Foo", result.Name)
	assert.InDelta(t, 42.5, result.Price, 0.001)
	require.NotNil(t, result.Tax)
	assert.InDelta(t, 3.2, *result.Tax, 0.001)
}

func TestDecoder_WholeBodyMissingRequiredField(t *testing.T) {
	decoder := bindhttp.NewDecoder[wholeBodyRequest](bindhttp.DefaultValidator())

	req := httptest.NewRequest("PUT", "/items/7", strings.NewReader(`{"name":"Foo"}`))
	req.SetPathValue("item_id", "7")

	_, err := decoder.Decode(req)
	fields := fieldErrors(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "body", fields[0].Location)
	assert.Equal(t, "price", fields[0].Field)
	assert.Equal(t, "required", fields[0].Constraint)
}

func TestDecoder_MultiBody(t *testing.T) {
	decoder := bindhttp.NewDecoder[multiBodyRequest](bindhttp.DefaultValidator())

	body := `{"item":{"name":"Foo","price":10},"importance":5}`
	req := httptest.NewRequest("PUT", "/singular-in-body/3", strings.NewReader(body))
	req.SetPathValue("item_id", "3")

	result, err := decoder.Decode(req)
	require.NoError(t, err)
	assert.Equal(t, 3, result.ItemID)
	assert.Equal(t, "Foo", result.Item.Name)
	assert.Equal(t, 5, result.Importance)
}

func TestDecoder_MultiBodyMissingParameter(t *testing.T) {
	decoder := bindhttp.NewDecoder[multiBodyRequest](bindhttp.DefaultValidator())

	body := `{"item":{"name":"Foo","price":10}}`
	req := httptest.NewRequest("PUT", "/singular-in-body/3", strings.NewReader(body))
	req.SetPathValue("item_id", "3")

	_, err := decoder.Decode(req)
	fields := fieldErrors(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "body", fields[0].Location)
	assert.Equal(t, "importance", fields[0].Field)
	assert.Equal(t, "required", fields[0].Constraint)
}

func TestDecoder_NestedBodyFieldPath(t *testing.T) {
	decoder := bindhttp.NewDecoder[multiBodyRequest](bindhttp.DefaultValidator())

	body := `{"item":{"price":10},"importance":5}`
	req := httptest.NewRequest("PUT", "/singular-in-body/3", strings.NewReader(body))
	req.SetPathValue("item_id", "3")

	_, err := decoder.Decode(req)
	fields := fieldErrors(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "body", fields[0].Location)
	assert.Equal(t, "item.name", fields[0].Field)
	assert.Equal(t, "required", fields[0].Constraint)
}

func TestDecoder_PathValueWinsOverBodyKey(t *testing.T) {
	decoder := bindhttp.NewDecoder[wholeBodyRequest](bindhttp.DefaultValidator())

	// A body key spelled like the Go field must not displace the path value.
	body := `{"name":"Foo","price":1,"ItemID":99}`
	req := httptest.NewRequest("PUT", "/items/7", strings.NewReader(body))
	req.SetPathValue("item_id", "7")

	result, err := decoder.Decode(req)
	require.NoError(t, err)
	assert.Equal(t, 7, result.ItemID)
}

func TestDecoder_QueryFieldsIgnoreBodyKeys(t *testing.T) {
	type mixedRequest struct {
		ItemID int        `path:"item_id"`
		Limit  int        `query:"limit" default:"10"`
		Needy  string     `query:"needy"`
		Item   itemSchema `json:"item"`
	}
	decoder := bindhttp.NewDecoder[mixedRequest](bindhttp.DefaultValidator())

	body := `{"item":{"name":"Foo","price":1},"Limit":99,"Needy":"sneaky"}`
	req := httptest.NewRequest("PUT", "/items/7", strings.NewReader(body))
	req.SetPathValue("item_id", "7")

	result, err := decoder.Decode(req)
	require.NoError(t, err)
	assert.Equal(t, 10, result.Limit, "absent query parameter must fall back to its default")
	assert.Empty(t, result.Needy, "absent query parameter without default must stay zero")
	assert.Equal(t, "Foo", result.Item.Name)
}

func TestDecoder_MapBody(t *testing.T) {
	decoder := bindhttp.NewDecoder[map[int]float64](bindhttp.DefaultValidator())

	req := httptest.NewRequest("POST", "/index-weights/", strings.NewReader(`{"1":2.5,"7":0.1}`))

	result, err := decoder.Decode(req)
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{1: 2.5, 7: 0.1}, result)
}

func TestDecoder_MapBodyRejectsNonIntegerKey(t *testing.T) {
	decoder := bindhttp.NewDecoder[map[int]float64](bindhttp.DefaultValidator())

	req := httptest.NewRequest("POST", "/index-weights/", strings.NewReader(`{"foo":2.5}`))

	_, err := decoder.Decode(req)
	require.Error(t, err)
}

func TestDecoder_BodyTypeMismatch(t *testing.T) {
	decoder := bindhttp.NewDecoder[wholeBodyRequest](bindhttp.DefaultValidator())

	req := httptest.NewRequest("PUT", "/items/7", strings.NewReader(`{"name":"Foo","price":"cheap"}`))
	req.SetPathValue("item_id", "7")

	_, err := decoder.Decode(req)
	fields := fieldErrors(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "body", fields[0].Location)
	assert.Equal(t, "price", fields[0].Field)
	assert.Equal(t, "type", fields[0].Constraint)
}

func TestDecoder_MalformedJSON(t *testing.T) {
	decoder := bindhttp.NewDecoder[wholeBodyRequest](bindhttp.DefaultValidator())

	req := httptest.NewRequest("PUT", "/items/7", strings.NewReader(`{not json`))
	req.SetPathValue("item_id", "7")

	_, err := decoder.Decode(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestDecoder_ContentTypes(t *testing.T) {
	decoder := bindhttp.NewDecoder[pathRequest](bindhttp.DefaultValidator())
	assert.Equal(t, []string{"application/json"}, decoder.ContentTypes())
}

func TestNewDecoder_InvalidPatternPanics(t *testing.T) {
	type badPattern struct {
		Query string `query:"q" pattern:"["`
	}

	assert.Panics(t, func() {
		bindhttp.NewDecoder[badPattern](bindhttp.DefaultValidator())
	})
}
