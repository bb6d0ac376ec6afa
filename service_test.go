package maglayout

import (
	"testing"
	"time"

	"github.com/foomo/maglayout/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, c *corpus) *Service {
	logger, _ := testLogger()
	return NewService(&config.Config{
		LayoutDir: c.layoutDir,
		ImageDir:  c.imageDir,
		IndexMode: config.IndexModeSuccesses,
	}, logger, nil)
}

func TestServiceRewalk(t *testing.T) {
	c := newCorpus(t)
	c.addPage("a", "fashion")
	c.addPage("b", "food")
	c.addPage("c", "fashion")

	s := newTestService(t, c)
	assert.Empty(t, s.GetStatus().Results)
	assert.Nil(t, s.StatusFunc()())
	assert.False(t, s.GetServiceStatus().Walked)

	status, err := s.Rewalk()
	require.NoError(t, err)
	assert.Len(t, status.Results, 3)
	serviceStatus := s.GetServiceStatus()
	assert.True(t, serviceStatus.Walked)
	assert.False(t, serviceStatus.Running)
	assert.Equal(t, 3, serviceStatus.Results)
	assert.Equal(t, status.Files, s.GetStatus().Files)
	assert.NotNil(t, s.StatusFunc()())

	c.addPage("d", "food")
	status, err = s.Rewalk()
	require.NoError(t, err)
	assert.Len(t, status.Results, 4)
}

func TestServiceGetResults(t *testing.T) {
	c := newCorpus(t)
	for _, stem := range []string{"a", "b", "c", "d", "e"} {
		c.addPage(stem, "fashion")
	}
	c.addPage("f", "food")
	s := newTestService(t, c)
	_, err := s.Rewalk()
	require.NoError(t, err)

	results, numPages := s.GetResults(Filters{Category: "fashion"}, 0, 2)
	assert.Equal(t, 3, numPages)
	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].Filename)

	results, _ = s.GetResults(Filters{Category: "fashion"}, 2, 2)
	require.Len(t, results, 1)
	assert.Equal(t, "e", results[0].Filename)

	results, _ = s.GetResults(Filters{Category: "fashion"}, 3, 2)
	assert.Empty(t, results)

	results, numPages = s.GetResults(Filters{Label: "image", MinElements: 2}, 0, 0)
	assert.Equal(t, 1, numPages)
	assert.Len(t, results, 6)

	results, _ = s.GetResults(Filters{Label: "headline"}, 0, 10)
	assert.Empty(t, results)
}

func TestServiceFatalWalkKeepsStatus(t *testing.T) {
	c := newCorpus(t)
	c.addPage("a", "news")
	c.addXML("b.xml", missingSizeXML)
	s := newTestService(t, c)
	status, err := s.Rewalk()
	assert.Error(t, err)
	assert.False(t, status.Complete())
	assert.Len(t, s.GetStatus().Results, 1)
	assert.NotEmpty(t, s.GetStatus().Error)
}

func TestServiceSchedule(t *testing.T) {
	c := newCorpus(t)
	c.addPage("a", "news")
	s := newTestService(t, c)

	_, err := s.Schedule("not a cron spec")
	assert.Error(t, err)

	stop, err := s.Schedule("@every 1s")
	require.NoError(t, err)
	defer stop()
	assert.Eventually(t, func() bool {
		return s.StatusFunc()() != nil
	}, 5*time.Second, 50*time.Millisecond)
	assert.Len(t, s.GetStatus().Results, 1)
}
