package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/diamondtrends/internal/domain/player"
	playermock "github.com/riskibarqy/diamondtrends/internal/mocks/domain/player"
)

func TestPlayerService_Resolve(t *testing.T) {
	t.Parallel()

	directory := playermock.NewDirectory(t)
	judge := player.Player{ID: 592450, Name: "Aaron Judge", Team: "NYY", Position: "OF", Roles: player.NewRoleSet(player.RoleHitter)}
	directory.On("FindByName", mock.Anything, " aaron judge ").Return(judge, true, nil).Once()

	service := NewPlayerService(directory, []string{"Shohei Ohtani"})
	got, err := service.Resolve(context.Background(), " aaron judge ")
	require.NoError(t, err)
	assert.Equal(t, judge, got)
}

func TestPlayerService_Resolve_NotFound(t *testing.T) {
	t.Parallel()

	directory := playermock.NewDirectory(t)
	directory.On("FindByName", mock.Anything, "Nobody").Return(player.Player{}, false, nil).Once()

	service := NewPlayerService(directory, nil)
	_, err := service.Resolve(context.Background(), "Nobody")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = service.Resolve(context.Background(), "   ")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPlayerService_Resolve_TwoWayOverride(t *testing.T) {
	t.Parallel()

	directory := playermock.NewDirectory(t)
	directory.On("FindByName", mock.Anything, "SHOHEI OHTANI").
		Return(player.Player{ID: 660271, Name: "Shohei Ohtani", Team: "LAD", Position: "DH", Roles: player.NewRoleSet(player.RoleHitter)}, true, nil).
		Once()

	service := NewPlayerService(directory, []string{" shohei ohtani "})
	got, err := service.Resolve(context.Background(), "SHOHEI OHTANI")
	require.NoError(t, err)
	assert.Equal(t, "P/DH", got.Position)
	assert.True(t, got.IsTwoWay())
	assert.Equal(t, "LAD", got.Team)
}

func TestPlayerService_Resolve_DirectoryError(t *testing.T) {
	t.Parallel()

	directory := playermock.NewDirectory(t)
	directory.On("FindByName", mock.Anything, "x").Return(player.Player{}, false, errors.New("boom")).Once()

	_, err := NewPlayerService(directory, nil).Resolve(context.Background(), "x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestPlayerService_ListNames(t *testing.T) {
	t.Parallel()

	directory := playermock.NewDirectory(t)
	directory.On("ListNames", mock.Anything).Return([]string{"Aaron Judge", "Shohei Ohtani"}, nil).Once()

	names, err := NewPlayerService(directory, nil).ListNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Aaron Judge", "Shohei Ohtani"}, names)
}
