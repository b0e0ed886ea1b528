package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mtlprog/turnaround/internal/config"
	"github.com/mtlprog/turnaround/internal/domain"
	"github.com/mtlprog/turnaround/internal/service"
)

func TestValidator_ValidateRequest(t *testing.T) {
	v := service.NewValidator(domain.DefaultCalendar(), 0)

	assert.NoError(t, v.ValidateRequest(domain.DueDateRequest{SubmittedAt: at(9, 10, 0)}))
	assert.ErrorIs(t, v.ValidateRequest(domain.DueDateRequest{}), domain.ErrMissingTimestamp)
	assert.ErrorIs(t, v.ValidateRequest(domain.DueDateRequest{SubmittedAt: at(13, 10, 0), TurnaroundHours: -1}), domain.ErrInvalidSubmitTime)
	assert.ErrorIs(t, v.ValidateRequest(domain.DueDateRequest{SubmittedAt: at(9, 10, 0), TurnaroundHours: -1}), domain.ErrInvalidTurnaround)
}

func TestValidator_ValidateBatch_DefaultLimit(t *testing.T) {
	v := service.NewValidator(domain.DefaultCalendar(), 0)

	assert.NoError(t, v.ValidateBatch(make([]domain.DueDateRequest, config.DefaultMaxBatchSize)))
	assert.ErrorIs(t, v.ValidateBatch(make([]domain.DueDateRequest, config.DefaultMaxBatchSize+1)), domain.ErrBatchTooLarge)
	assert.ErrorIs(t, v.ValidateBatch([]domain.DueDateRequest{}), domain.ErrEmptyBatch)
}

func TestValidator_ValidateMinute(t *testing.T) {
	v := service.NewValidator(domain.DefaultCalendar(), 0)

	assert.NoError(t, v.ValidateMinute(0))
	assert.NoError(t, v.ValidateMinute(59))
	assert.ErrorIs(t, v.ValidateMinute(-1), domain.ErrInvalidMinute)
	assert.ErrorIs(t, v.ValidateMinute(60), domain.ErrInvalidMinute)
}
