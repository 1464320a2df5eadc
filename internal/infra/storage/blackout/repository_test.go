package blackout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func TestRegisterBatchQuery(t *testing.T) {
	days := []types.DateString{"2026-12-24", "2026-12-25", "2026-12-26"}

	query, args, err := registerBatchQuery("emp-1", days)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO employee_blackouts")

	// Повторная регистрация пары (employee_id, day) оставляет ровно одну
	// строку: без этого суффикса дубликат уронил бы весь батч
	assert.Contains(t, query, "ON CONFLICT (employee_id, day) DO NOTHING")

	// Один multi-VALUES запрос на весь набор: по паре аргументов на дату
	assert.Contains(t, query, "$6")
	assert.Equal(t, []interface{}{
		"emp-1", "2026-12-24",
		"emp-1", "2026-12-25",
		"emp-1", "2026-12-26",
	}, args)
}

func TestRegisterBatchQuery_SingleDay(t *testing.T) {
	query, args, err := registerBatchQuery("emp-1", []types.DateString{"2026-12-24"})
	require.NoError(t, err)

	assert.Contains(t, query, "ON CONFLICT (employee_id, day) DO NOTHING")
	assert.Len(t, args, 2)
}
