package congress

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemberByID(t *testing.T) {
	client, last := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.Members().Member(context.Background(), MemberRequest{
		MemberID: "A000360",
	})
	require.NoError(t, err)
	require.Equal(t, "/member/A000360", last.Path)
	require.Equal(t, url.Values{}, last.Query)
}

func TestMemberByIDWithDetails(t *testing.T) {
	client, last := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.Members().Member(context.Background(), MemberRequest{
		MemberID: "A000360",
		Details:  "sponsor",
	})
	require.NoError(t, err)
	require.Equal(t, "/member/A000360/sponsored-legislation", last.Path)

	_, err = client.Members().Member(context.Background(), MemberRequest{
		MemberID: "A000360",
		Details:  "cosponsor",
	})
	require.NoError(t, err)
	require.Equal(t, "/member/A000360/cosponsored-legislation", last.Path)
}

func TestMemberByCongressStateDistrict(t *testing.T) {
	client, last := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.Members().Member(context.Background(), MemberRequest{
		Congress: Int(117),
		State:    "CA",
		District: Int(12),
	})
	require.NoError(t, err)
	require.Equal(t, "/member/congress/117/CA/12", last.Path)
	require.Equal(t, url.Values{}, last.Query)
}

func TestMemberIDTakesPrecedence(t *testing.T) {
	client, last := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.Members().Member(context.Background(), MemberRequest{
		MemberID: "A000360",
		Congress: Int(117),
		State:    "CA",
	})
	require.NoError(t, err)
	require.Equal(t, "/member/A000360", last.Path)
}

func TestMemberPagination(t *testing.T) {
	client, last := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.Members().Member(context.Background(), MemberRequest{
		Congress: Int(117),
		Filters:  Filters{Limit: Int(10), Offset: Int(5)},
	})
	require.NoError(t, err)
	require.Equal(t, "/member/congress/117", last.Path)
	require.Equal(t, url.Values{"limit": {"10"}, "offset": {"5"}}, last.Query)
}

func TestMemberCollection(t *testing.T) {
	client, last := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.Members().Member(context.Background(), MemberRequest{})
	require.NoError(t, err)
	require.Equal(t, "/member", last.Path)
	require.Equal(t, url.Values{}, last.Query)
}

func TestMemberFilterParameters(t *testing.T) {
	client, last := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.Members().Member(context.Background(), MemberRequest{
		Congress: Int(117),
		Filters:  Filters{Limit: Int(5), Offset: nil},
	})
	require.NoError(t, err)
	require.Equal(t, "/member/congress/117", last.Path)
	require.Equal(t, url.Values{"limit": {"5"}}, last.Query)
}
