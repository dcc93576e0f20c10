package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/mtarp-portal/internal/model"
	"github.com/mcoot/mtarp-portal/internal/testutil"
)

func TestNewPageLoggedOut(t *testing.T) {
	state := model.NewViewState()
	state.Login = model.LoginForm{Username: "phoenix", Password: "secret"}

	page := NewPage(state, DefaultServerStats())

	assert.Equal(t, model.TabHome, page.ActiveTab)
	assert.False(t, page.LoggedIn)
	assert.Nil(t, page.Profile)
	assert.NotNil(t, page.Achievements)
	assert.Empty(t, page.Achievements)
	assert.Equal(t, "phoenix", page.Login.Username)

	var tabs []model.Tab
	for _, item := range page.Nav {
		tabs = append(tabs, item.Tab)
	}
	assert.Equal(t, []model.Tab{model.TabHome, model.TabRegister, model.TabStats}, tabs)
	assert.True(t, page.Nav[0].Active)
}

func TestNewPageProfileTabWithoutSessionRendersHome(t *testing.T) {
	state := model.NewViewState()
	state.Tab = model.TabProfile

	page := NewPage(state, DefaultServerStats())

	assert.Equal(t, model.TabHome, page.ActiveTab)
	assert.Nil(t, page.Profile)
}

func TestNewPageUnknownTabRendersHome(t *testing.T) {
	state := model.NewViewState()
	state.Tab = model.Tab("settings")

	assert.Equal(t, model.TabHome, NewPage(state, DefaultServerStats()).ActiveTab)
}

func TestNewPageLoggedIn(t *testing.T) {
	state := model.NewViewState()
	state.Tab = model.TabProfile
	state.Session = testutil.SampleSession()

	page := NewPage(state, DefaultServerStats())

	assert.Equal(t, model.TabProfile, page.ActiveTab)
	assert.True(t, page.LoggedIn)
	require.NotNil(t, page.Profile)
	assert.Equal(t, "Phoenix_Walker", page.Profile.CharacterName)
	assert.Equal(t, 45, page.Profile.Level)
	assert.Equal(t, 75, page.Profile.Experience)
	assert.Equal(t, "$2,450,000", page.Profile.MoneyDisplay)
	assert.Equal(t, "156 h", page.Profile.PlaytimeDisplay)
	assert.Len(t, page.Achievements, 2)
	assert.Len(t, page.Nav, 4)
}

func TestNewPageKeepsLoadingFlag(t *testing.T) {
	state := model.NewViewState()
	state.Loading = true

	assert.True(t, NewPage(state, DefaultServerStats()).Loading)
}

func TestNewProfileViewDefaultsMissingFields(t *testing.T) {
	session := &model.Session{
		User:    model.User{Username: "a"},
		Profile: &model.Profile{Level: testutil.Ptr(5), Experience: testutil.Ptr(40)},
	}

	view := NewProfileView(session)

	assert.Equal(t, "a_Character", view.CharacterName)
	assert.Equal(t, 5, view.Level)
	assert.Equal(t, 40, view.Experience)
	assert.Equal(t, int64(0), view.Money)
	assert.Equal(t, "$0", view.MoneyDisplay)
	assert.Equal(t, "0 h", view.PlaytimeDisplay)
	assert.Equal(t, 0, view.JobsCompleted)
	assert.Equal(t, 0, view.RacesParticipated)
	assert.Equal(t, 0, view.CrimesCommitted)
}

func TestNewProfileViewWithoutProfile(t *testing.T) {
	view := NewProfileView(&model.Session{User: model.User{Username: "a"}})

	assert.Equal(t, "a_Character", view.CharacterName)
	assert.Equal(t, 0, view.Level)
	assert.Equal(t, 0, view.Experience)
}

func TestNewProfileViewEmptyUsernameHasNoCharacterName(t *testing.T) {
	view := NewProfileView(&model.Session{})

	assert.Equal(t, "", view.CharacterName)
}

func TestNewProfileViewClampsExperience(t *testing.T) {
	over := NewProfileView(&model.Session{Profile: &model.Profile{Experience: testutil.Ptr(140)}})
	under := NewProfileView(&model.Session{Profile: &model.Profile{Experience: testutil.Ptr(-3)}})

	assert.Equal(t, 100, over.Experience)
	assert.Equal(t, 0, under.Experience)
}

func TestNewAchievementViews(t *testing.T) {
	achievements := []model.Achievement{
		{Name: "First Paycheck", Completed: true, Progress: 1000, RequiredValue: testutil.Ptr(1000), RewardMoney: testutil.Ptr(int64(5000))},
		{Name: "City Legend", Progress: 45, RequiredValue: testutil.Ptr(50)},
		{Name: "Racer", Progress: 3},
		{Name: "Veteran", Completed: true},
		{Name: "Overachiever", Progress: 80, RequiredValue: testutil.Ptr(40)},
	}

	views := NewAchievementViews(achievements)

	require.Len(t, views, 5)
	assert.Equal(t, 100, views[0].ProgressPercent)
	assert.Equal(t, "trophy", views[0].Icon)
	assert.Equal(t, "$5,000", views[0].RewardDisplay)
	assert.Equal(t, 90, views[1].ProgressPercent)
	assert.Equal(t, "lock", views[1].Icon)
	assert.Equal(t, 0, views[2].ProgressPercent)
	assert.Equal(t, 100, views[3].ProgressPercent)
	assert.Equal(t, 100, views[4].ProgressPercent)
	assert.Empty(t, views[1].RewardDisplay)
}

func TestServerStatsFormatting(t *testing.T) {
	view := NewServerStats(DefaultServerStats())

	assert.Equal(t, "532", view.OnlinePlayers)
	assert.Equal(t, "1,247", view.TotalPlayers)
	assert.Equal(t, "99.7%", view.Uptime)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$2,450,000", FormatMoney(2450000))
	assert.Equal(t, "$999", FormatMoney(999))
	assert.Equal(t, "-$1,500", FormatMoney(-1500))
}
