package airtable

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateRecord(t *testing.T) {
	t.Run("SendsFieldsAndReturnsRecordID", func(t *testing.T) {
		var gotPath string
		var gotBody map[string]any

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			json.NewEncoder(w).Encode(map[string]any{"id": "recABC"})
		}))
		defer srv.Close()

		client := NewClientWithBaseURL("tok123", srv.URL)
		recordID, err := client.CreateRecord(context.Background(), "appX", "tblY", map[string]any{"fldA": "v"})

		assert.NoError(t, err)
		assert.Equal(t, "recABC", recordID)
		assert.Equal(t, "/appX/tblY", gotPath)
		assert.Equal(t, map[string]any{"fields": map[string]any{"fldA": "v"}}, gotBody)
	})

	t.Run("ClassifiesExpiredToken", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		client := NewClientWithBaseURL("stale", srv.URL)
		_, err := client.CreateRecord(context.Background(), "appX", "tblY", nil)

		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestGetTableFields(t *testing.T) {
	t.Run("FallsBackToTableListingOn404", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/meta/bases/appX/tables/tblY":
				w.WriteHeader(http.StatusNotFound)
			case "/meta/bases/appX/tables":
				json.NewEncoder(w).Encode(TablesResponse{Tables: []Table{
					{ID: "tblOther", Name: "Other"},
					{ID: "tblY", Name: "Wanted", Fields: []TableField{{ID: "fldA", Name: "A", Type: "singleLineText"}}},
				}})
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer srv.Close()

		client := NewClientWithBaseURL("tok", srv.URL)
		table, err := client.GetTableFields(context.Background(), "appX", "tblY")

		assert.NoError(t, err)
		assert.Equal(t, "Wanted", table.Name)
		assert.Len(t, table.Fields, 1)
	})

	t.Run("MissingEverywhereIsNotFound", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/meta/bases/appX/tables" {
				json.NewEncoder(w).Encode(TablesResponse{})
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := NewClientWithBaseURL("tok", srv.URL)
		_, err := client.GetTableFields(context.Background(), "appX", "tblY")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestWhoami(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/meta/whoami", r.URL.Path)
		json.NewEncoder(w).Encode(WhoAmI{ID: "usr1", Email: "a@b.c"})
	}))
	defer srv.Close()

	client := NewClientWithBaseURL("tok", srv.URL)
	who, err := client.Whoami(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "usr1", who.ID)
	assert.Equal(t, "a@b.c", who.Email)
}
