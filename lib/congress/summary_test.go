package congress

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSummaryCollection(t *testing.T) {
	client, last := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.Summaries().Summary(context.Background(), SummaryRequest{})
	require.NoError(t, err)
	require.Equal(t, "/summaries", last.Path)
	require.Equal(t, url.Values{}, last.Query)
}

func TestSummaryByCongressAndBillType(t *testing.T) {
	client, last := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.Summaries().Summary(context.Background(), SummaryRequest{
		Congress: Int(117),
		BillType: "hr",
	})
	require.NoError(t, err)
	require.Equal(t, "/summaries/117/hr", last.Path)
}

func TestSummaryDateFilters(t *testing.T) {
	client, last := newTestClient(t, http.StatusOK, `{}`)

	from := time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2022, 5, 1, 0, 0, 0, 0, time.UTC)
	_, err := client.Summaries().Summary(context.Background(), SummaryRequest{
		Congress: Int(117),
		Filters: Filters{
			FromDateTime: &from,
			ToDateTime:   &to,
			Sort:         "updateDate+desc",
		},
	})
	require.NoError(t, err)
	require.Equal(t, "/summaries/117", last.Path)
	require.Equal(t, url.Values{
		"fromDateTime": {"2022-04-01T00:00:00Z"},
		"toDateTime":   {"2022-05-01T00:00:00Z"},
		"sort":         {"updateDate+desc"},
	}, last.Query)
}
