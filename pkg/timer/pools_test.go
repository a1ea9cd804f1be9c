package timer

import (
	"context"
	"net/http"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const poolJSON = `{"timerPoolId":"grn:timer:pool:daily","ownerId":"owner-1","name":"daily","description":"x","createAt":1700000000000}`

func TestListPools(t *testing.T) {
	f := newFake(`{"items":[` + poolJSON + `],"nextPageToken":"next"}`)
	c := New(f)

	page, err := c.ListPools(context.Background(), &ListPoolsRequest{PageToken: String("tok"), Limit: Int(5)})
	require.NoError(t, err)

	rc := f.last(t)
	assert.Equal(t, http.MethodGet, rc.Method)
	assert.Equal(t, "/timerPool", rc.Call.Path)
	assert.Equal(t, ServiceName, rc.Call.Service)
	assert.Equal(t, "DescribeTimerPool", rc.Call.Operation)
	assert.Equal(t, map[string]string{"pageToken": "tok", "limit": "5"}, rc.Call.Query)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "daily", page.Items[0].Name)
	assert.Equal(t, int64(1700000000000), page.Items[0].CreatedAt().UnixMilli())
	assert.True(t, page.HasNext())
	assert.Equal(t, "next", page.NextPageToken)
}

func TestListPools_NilRequestOmitsQuery(t *testing.T) {
	f := newFake(`{"items":[]}`)
	c := New(f)

	page, err := c.ListPools(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, f.last(t).Call.Query)
	assert.False(t, page.HasNext())
}

func TestCreatePool(t *testing.T) {
	f := newFake(`{"item":` + poolJSON + `}`)
	c := New(f)

	res, err := c.CreatePool(context.Background(), &CreatePoolRequest{Name: "daily", Description: String("x")})
	require.NoError(t, err)

	rc := f.last(t)
	assert.Equal(t, http.MethodPost, rc.Method)
	assert.Equal(t, "/timerPool", rc.Call.Path)
	assert.Equal(t, "CreateTimerPool", rc.Call.Operation)
	assert.Equal(t, map[string]any{"name": "daily", "description": "x"}, bodyMap(t, rc.Call.Body))
	assert.Equal(t, "grn:timer:pool:daily", res.Item.TimerPoolID)
}

func TestCreatePool_ExactBody(t *testing.T) {
	f := newFake(`{"item":` + poolJSON + `}`)
	c := New(f)

	_, err := c.CreatePool(context.Background(), &CreatePoolRequest{Name: "daily", Description: String("x")})
	require.NoError(t, err)

	b, err := json.Marshal(f.last(t).Call.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"daily","description":"x"}`, string(b))
}

func TestCreatePool_OmitsDescription(t *testing.T) {
	f := newFake(`{"item":{}}`)
	c := New(f)

	_, err := c.CreatePool(context.Background(), &CreatePoolRequest{Name: "daily"})
	require.NoError(t, err)

	body := bodyMap(t, f.last(t).Call.Body)
	assert.Equal(t, map[string]any{"name": "daily"}, body)
	assert.NotContains(t, body, "description")
}

func TestUpdatePool(t *testing.T) {
	f := newFake(`{"item":` + poolJSON + `}`)
	c := New(f)

	_, err := c.UpdatePool(context.Background(), &UpdatePoolRequest{TimerPoolName: "daily", Description: String("y")})
	require.NoError(t, err)

	rc := f.last(t)
	assert.Equal(t, http.MethodPut, rc.Method)
	assert.Equal(t, "/timerPool/daily", rc.Call.Path)
	assert.Equal(t, "UpdateTimerPool", rc.Call.Operation)
	assert.Equal(t, map[string]any{"description": "y"}, bodyMap(t, rc.Call.Body))

	_, err = c.UpdatePool(context.Background(), &UpdatePoolRequest{TimerPoolName: "daily"})
	require.NoError(t, err)
	assert.Empty(t, bodyMap(t, f.last(t).Call.Body))
}

func TestGetPool(t *testing.T) {
	f := newFake(`{"item":` + poolJSON + `}`)
	c := New(f)

	res, err := c.GetPool(context.Background(), &GetPoolRequest{TimerPoolName: "daily"})
	require.NoError(t, err)

	rc := f.last(t)
	assert.Equal(t, http.MethodGet, rc.Method)
	assert.Equal(t, "/timerPool/daily", rc.Call.Path)
	assert.Nil(t, rc.Call.Body)
	assert.Equal(t, "owner-1", res.Item.OwnerID)
	assert.Equal(t, "x", res.Item.Description)
}

func TestDeletePool(t *testing.T) {
	f := newFake(``)
	c := New(f)

	res, err := c.DeletePool(context.Background(), &DeletePoolRequest{TimerPoolName: "daily"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode())

	rc := f.last(t)
	assert.Equal(t, http.MethodDelete, rc.Method)
	assert.Equal(t, "/timerPool/daily", rc.Call.Path)
	assert.Equal(t, "DeleteTimerPool", rc.Call.Operation)
}
