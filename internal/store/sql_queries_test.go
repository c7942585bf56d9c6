package store

import (
	"testing"

	"github.com/pfalcao/go-biblioteca/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSelectBooksQuery(t *testing.T) {
	tests := []struct {
		name          string
		onlyAvailable bool
		wantContains  []string
		wantArgs      []any
	}{
		{
			name:          "full catalog",
			onlyAvailable: false,
			wantContains:  []string{"SELECT id, titulo, autor, ano, disponivel", "FROM livro", "ORDER BY id"},
			wantArgs:      nil,
		},
		{
			name:          "only available",
			onlyAvailable: true,
			wantContains:  []string{"FROM livro", "WHERE disponivel = $1", "ORDER BY id"},
			wantArgs:      []any{true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectBooksQuery(tt.onlyAvailable)
			require.NoError(t, err)
			for _, fragment := range tt.wantContains {
				assert.Contains(t, query, fragment)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildUpdateBookQuery(t *testing.T) {
	title := "Duna"
	author := "Frank Herbert"
	year := 1965

	tests := []struct {
		name         string
		update       models.BookUpdate
		wantContains []string
		wantArgs     []any
	}{
		{
			name:         "title only",
			update:       models.BookUpdate{Title: &title},
			wantContains: []string{"UPDATE livro", "SET titulo = $1", "WHERE id = $2"},
			wantArgs:     []any{title, int64(3)},
		},
		{
			name:         "all fields",
			update:       models.BookUpdate{Title: &title, Author: &author, Year: &year},
			wantContains: []string{"SET titulo = $1, autor = $2, ano = $3", "WHERE id = $4"},
			wantArgs:     []any{title, author, year, int64(3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateBookQuery(3, tt.update)
			require.NoError(t, err)
			for _, fragment := range tt.wantContains {
				assert.Contains(t, query, fragment)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildUpdateBookQuery_Empty(t *testing.T) {
	_, _, err := buildUpdateBookQuery(3, models.BookUpdate{})
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}
