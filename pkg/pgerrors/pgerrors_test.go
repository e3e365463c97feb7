package pgerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	unique := &pq.Error{Code: CodeUniqueViolation, Constraint: "bookings_date_id_key"}
	wrapped := fmt.Errorf("insert: %w", unique)

	assert.True(t, IsUniqueViolation(unique, "bookings_date_id_key"))
	assert.True(t, IsUniqueViolation(wrapped, ""))
	assert.False(t, IsUniqueViolation(wrapped, "bookings_token_key"))
	assert.False(t, IsForeignKeyViolation(wrapped, ""))
	assert.False(t, IsUniqueViolation(errors.New("plain"), ""))
	assert.True(t, IsNotNullViolation(&pq.Error{Code: CodeNotNullViolation}))
	assert.True(t, IsCheckViolation(&pq.Error{Code: CodeCheckViolation, Constraint: "c"}, "c"))
}
