package repository

import "testing"

func TestLikeOperatorByDialect(t *testing.T) {
	cases := []struct {
		dialect string
		want    string
	}{
		{dialect: "postgres", want: "ILIKE"},
		{dialect: "PostgreSQL", want: "ILIKE"},
		{dialect: " postgres ", want: "ILIKE"},
		{dialect: "sqlite", want: "LIKE"},
		{dialect: "mysql", want: "LIKE"},
		{dialect: "", want: "LIKE"},
	}
	for _, item := range cases {
		if got := likeOperatorByDialect(item.dialect); got != item.want {
			t.Fatalf("dialect %q: want %s got %s", item.dialect, item.want, got)
		}
	}
}

func TestDBDialectNameNilDefaultsToSqlite(t *testing.T) {
	if got := dbDialectName(nil); got != "sqlite" {
		t.Fatalf("nil db want sqlite got %s", got)
	}
	if got := likeOperator(nil); got != "LIKE" {
		t.Fatalf("nil db want LIKE got %s", got)
	}
}
