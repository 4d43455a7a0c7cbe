package mappers

import (
	"encoding/json"
	"testing"
	"time"

	"feedfilter-api/api/dto/requests"
	"feedfilter-api/core/domain"
	coreerrors "feedfilter-api/core/errors"
)

func seconds(s string) *string {
	return &s
}

func TestToQuery(t *testing.T) {
	q, err := ToQuery(&requests.QueryRequest{Value: "Golang", Timeout: seconds("5")}, 10*time.Second)
	if err != nil {
		t.Fatalf("ToQuery returned error: %v", err)
	}

	if q.Term != "Golang" {
		t.Errorf("Term = %q, want %q", q.Term, "Golang")
	}
	if q.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", q.Timeout)
	}
}

func TestToQuery_Defaults(t *testing.T) {
	q, err := ToQuery(&requests.QueryRequest{}, 10*time.Second)
	if err != nil {
		t.Fatalf("ToQuery returned error: %v", err)
	}

	if q.Term != "" || q.Timeout != 10*time.Second {
		t.Errorf("unexpected defaults: %+v", q)
	}
}

func TestToQuery_InvalidTimeout(t *testing.T) {
	_, err := ToQuery(&requests.QueryRequest{Timeout: seconds("abc")}, 10*time.Second)

	if !coreerrors.IsValidation(err) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestToQuery_EmptyTimeoutIsInvalid(t *testing.T) {
	_, err := ToQuery(&requests.QueryRequest{Value: "go", Timeout: seconds("")}, 10*time.Second)

	if !coreerrors.IsValidation(err) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestToQueryResponse_WireShape(t *testing.T) {
	resp := ToQueryResponse(domain.ResultSet{
		{URL: "https://a.example/1", Resume: "Go 1.22 released"},
		{URL: "https://b.example/2", Resume: ""},
	})

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"embryo_list":[{"properties":{"url":"https://a.example/1","resume":"Go 1.22 released"}},{"properties":{"url":"https://b.example/2","resume":""}}]}`
	if string(data) != want {
		t.Errorf("got %s\nwant %s", data, want)
	}
}

func TestToQueryResponse_EmptyIsArray(t *testing.T) {
	for _, rs := range []domain.ResultSet{nil, {}} {
		data, err := json.Marshal(ToQueryResponse(rs))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(data) != `{"embryo_list":[]}` {
			t.Errorf("got %s", data)
		}
	}
}
