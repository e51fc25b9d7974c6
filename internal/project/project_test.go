package project

import (
	"testing"

	"github.com/jammission/jamsetup/internal/filesystem"
	"github.com/stretchr/testify/require"
)

func TestDiscover_InWorkingDirectory(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/checkout/requirements.txt", []byte("Django==4.2\n"))
	fs.AddFile("/checkout/manage.py", []byte("#!/usr/bin/env python\n"))
	fs.SetWorkingDir("/checkout")

	proj, err := Discover(fs, "requirements.txt", "manage.py")
	require.NoError(t, err)
	require.Equal(t, "/checkout", proj.Root)
	require.Equal(t, "/checkout/requirements.txt", proj.ManifestPath)
	require.Equal(t, "/checkout/manage.py", proj.ManagePath)
	require.True(t, proj.HasManage(fs))
}

func TestDiscover_FromSubdirectory(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/checkout/requirements.txt", []byte("Django==4.2\n"))
	fs.AddDir("/checkout/core/templates")
	fs.SetWorkingDir("/checkout/core/templates")

	proj, err := Discover(fs, "requirements.txt", "manage.py")
	require.NoError(t, err)
	require.Equal(t, "/checkout", proj.Root)
	require.False(t, proj.HasManage(fs))
}

func TestDiscover_NotFound(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/elsewhere")
	fs.SetWorkingDir("/elsewhere")

	_, err := Discover(fs, "requirements.txt", "manage.py")
	require.Error(t, err)
	require.Contains(t, err.Error(), "project root not found")
	require.Contains(t, err.Error(), "/elsewhere")
}
