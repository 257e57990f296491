package classconf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classconf/classconf"
)

func TestProjectionGet(t *testing.T) {
	t.Parallel()

	proj, err := classconf.Project(serverSettings{Host: "localhost", Port: 8080})
	require.NoError(t, err)

	host, err := proj.Get("HOST")
	require.NoError(t, err)
	assert.Equal(t, "localhost", host)
}

func TestProjectionGetUnknownName(t *testing.T) {
	t.Parallel()

	proj, err := classconf.Project(serverSettings{Port: 8080})
	require.NoError(t, err)

	_, err = proj.Get("NOT_A_FIELD")
	require.Error(t, err)
	assert.ErrorIs(t, err, classconf.ErrSettingNotFound)
	assert.Contains(t, err.Error(), "NOT_A_FIELD")
	assert.Contains(t, err.Error(), "serverSettings")
}

func TestProjectionExposesMergedKeys(t *testing.T) {
	t.Parallel()

	proj, err := classconf.Project(mergedSettings{Port: 5432, Extra: adhocSettings{Timeout: 30}})
	require.NoError(t, err)

	timeout, err := proj.Get("TIMEOUT")
	require.NoError(t, err)
	assert.Equal(t, 30, timeout)
	assert.Equal(t, []string{"PORT", "TIMEOUT"}, proj.Names())
}

func TestProjectionSnapshotsRecordState(t *testing.T) {
	t.Parallel()

	rec := &serverSettings{Port: 8080}
	proj, err := classconf.Project(rec)
	require.NoError(t, err)

	rec.Port = 9090

	port, err := proj.Get("PORT")
	require.NoError(t, err)
	assert.Equal(t, 8080, port, "projection must snapshot the flattened state")
}

func TestProjectionValuesReturnsCopy(t *testing.T) {
	t.Parallel()

	proj, err := classconf.Project(serverSettings{Port: 8080})
	require.NoError(t, err)

	values := proj.Values()
	values["PORT"] = 9090

	port, err := proj.Get("PORT")
	require.NoError(t, err)
	assert.Equal(t, 8080, port)
}

func TestMapGet(t *testing.T) {
	t.Parallel()

	m := classconf.Map{"PORT": 8080}

	value, err := m.Get("PORT")
	require.NoError(t, err)
	assert.Equal(t, 8080, value)

	_, err = m.Get("HOST")
	assert.ErrorIs(t, err, classconf.ErrSettingNotFound)
}
