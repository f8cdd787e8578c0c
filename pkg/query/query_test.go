package query_test

import (
	"reflect"
	"testing"

	"github.com/JaimeStill/load-planner/pkg/query"
)

func projection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "plans", "p").
		Project("id", "Id").
		Project("label", "Label").
		Project("utilization", "Utilization").
		Project("created_at", "CreatedAt")
}

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}

func ptr[T any](v T) *T { return &v }

func TestProjectionMap(t *testing.T) {
	p := projection()

	if got := p.Table(); got != "public.plans p" {
		t.Errorf("Table() = %q", got)
	}
	if got := p.Columns(); got != "p.id, p.label, p.utilization, p.created_at" {
		t.Errorf("Columns() = %q", got)
	}
	if got := p.Column("Label"); got != "p.label" {
		t.Errorf("Column(Label) = %q", got)
	}
	if p.HasField("Missing") {
		t.Error("HasField(Missing) = true")
	}
}

func TestBuilder_BuildCount(t *testing.T) {
	tests := []struct {
		name     string
		build    func(*query.Builder)
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "no conditions",
			build:   func(*query.Builder) {},
			wantSQL: "SELECT COUNT(*) FROM public.plans p",
		},
		{
			name: "nil filters ignored",
			build: func(b *query.Builder) {
				b.WhereContains("Label", nil).WhereAtLeast("Utilization", nil).WhereSearch(ptr(""), "Label")
			},
			wantSQL: "SELECT COUNT(*) FROM public.plans p",
		},
		{
			name: "numbered parameters",
			build: func(b *query.Builder) {
				b.WhereSearch(ptr("truck"), "Label", "Id").
					WhereContains("Label", ptr("north")).
					WhereAtLeast("Utilization", ptr(0.5))
			},
			wantSQL:  "SELECT COUNT(*) FROM public.plans p WHERE (p.label ILIKE $1 OR p.id ILIKE $2) AND p.label ILIKE $3 AND p.utilization >= $4",
			wantArgs: []any{"%truck%", "%truck%", "%north%", 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := query.NewBuilder(projection(), defaultSort)
			tt.build(b)

			sql, args := b.BuildCount()
			if sql != tt.wantSQL {
				t.Errorf("sql = %q\nwant  %q", sql, tt.wantSQL)
			}
			if len(args) != len(tt.wantArgs) || (len(args) > 0 && !reflect.DeepEqual(args, tt.wantArgs)) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestBuilder_BuildPage(t *testing.T) {
	tests := []struct {
		name    string
		sort    []query.SortField
		page    int
		size    int
		wantSQL string
	}{
		{
			name:    "default sort",
			page:    1,
			size:    20,
			wantSQL: "SELECT p.id, p.label, p.utilization, p.created_at FROM public.plans p ORDER BY p.created_at DESC LIMIT 20 OFFSET 0",
		},
		{
			name:    "explicit sort",
			sort:    []query.SortField{{Field: "Utilization", Descending: true}, {Field: "Label"}},
			page:    3,
			size:    10,
			wantSQL: "SELECT p.id, p.label, p.utilization, p.created_at FROM public.plans p ORDER BY p.utilization DESC, p.label ASC LIMIT 10 OFFSET 20",
		},
		{
			name:    "unknown sort ignored",
			sort:    []query.SortField{{Field: "Password"}},
			page:    1,
			size:    5,
			wantSQL: "SELECT p.id, p.label, p.utilization, p.created_at FROM public.plans p ORDER BY p.created_at DESC LIMIT 5 OFFSET 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, _ := query.NewBuilder(projection(), defaultSort).
				OrderBy(tt.sort...).
				BuildPage(tt.page, tt.size)
			if sql != tt.wantSQL {
				t.Errorf("sql = %q\nwant  %q", sql, tt.wantSQL)
			}
		})
	}
}

func TestBuilder_BuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(projection(), defaultSort).BuildSingle("Id", "abc")

	want := "SELECT p.id, p.label, p.utilization, p.created_at FROM public.plans p WHERE p.id = $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != "abc" {
		t.Errorf("args = %v", args)
	}
}

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		in   string
		want []query.SortField
	}{
		{"", nil},
		{"Label", []query.SortField{{Field: "Label"}}},
		{"-CreatedAt, Label", []query.SortField{{Field: "CreatedAt", Descending: true}, {Field: "Label"}}},
		{",-,Label,", []query.SortField{{Field: "Label"}}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := query.ParseSortFields(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseSortFields(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("field %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
