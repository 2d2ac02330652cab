package queries_test

import (
	"testing"

	"distribution/internal/core/application/usecases/queries"
	"distribution/internal/core/domain/model/actor"
	"distribution/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestActor(t *testing.T, role actor.Role) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(kernel.NewUUID(), role, "Test Caller", "caller@example.com")
	require.NoError(t, err)
	return a
}

func TestNewGetOrdersQuery_Valid(t *testing.T) {
	for _, role := range []actor.Role{actor.Admin, actor.Staff, actor.Client} {
		t.Run(role.String(), func(t *testing.T) {
			requester := createTestActor(t, role)

			query, err := queries.NewGetOrdersQuery(requester, 2, 25)
			require.NoError(t, err)
			require.NoError(t, query.Validate())

			assert.Equal(t, requester.ID(), query.Requester().ID())
			assert.Equal(t, 2, query.Page())
			assert.Equal(t, 25, query.Limit())
		})
	}
}

func TestNewGetOrdersQuery_DefaultsPagination(t *testing.T) {
	requester := createTestActor(t, actor.Client)

	query, err := queries.NewGetOrdersQuery(requester, 0, -1)
	require.NoError(t, err)

	assert.Equal(t, 1, query.Page())
	assert.Equal(t, 50, query.Limit())
}

func TestNewGetOrdersQuery_InvalidRequester(t *testing.T) {
	_, err := queries.NewGetOrdersQuery(actor.Actor{}, 1, 50)
	require.Error(t, err)
	assert.ErrorIs(t, err, actor.ErrActorIsNotConstructed)
}

func TestGetOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)
}
