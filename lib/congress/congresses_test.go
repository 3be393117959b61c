package congress

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCongressByNumber(t *testing.T) {
	client, last := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.Congresses().Congress(context.Background(), CongressRequest{
		Congress: Int(117),
	})
	require.NoError(t, err)
	require.Equal(t, "/congress/117", last.Path)
	require.Equal(t, url.Values{}, last.Query)
}

func TestCongressCurrent(t *testing.T) {
	client, last := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.Congresses().Congress(context.Background(), CongressRequest{
		CurrentCongress: true,
	})
	require.NoError(t, err)
	require.Equal(t, "/congress/current", last.Path)
	require.Equal(t, url.Values{}, last.Query)
}

func TestCongressCurrentOverridesNumber(t *testing.T) {
	client, last := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.Congresses().Congress(context.Background(), CongressRequest{
		Congress:        Int(110),
		CurrentCongress: true,
	})
	require.NoError(t, err)
	require.Equal(t, "/congress/current", last.Path)
}

func TestCongressCollectionPagination(t *testing.T) {
	client, last := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.Congresses().Congress(context.Background(), CongressRequest{
		Filters: Filters{Limit: Int(10), Offset: Int(20)},
	})
	require.NoError(t, err)
	require.Equal(t, "/congress", last.Path)
	require.Equal(t, url.Values{"limit": {"10"}, "offset": {"20"}}, last.Query)
}

func TestCongressFilterParameters(t *testing.T) {
	client, last := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.Congresses().Congress(context.Background(), CongressRequest{
		Filters: Filters{Limit: Int(5), Offset: nil},
	})
	require.NoError(t, err)
	require.Equal(t, "/congress", last.Path)
	require.Equal(t, url.Values{"limit": {"5"}}, last.Query)
}
