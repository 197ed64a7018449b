package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/atelierhq/atelier/engine/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCrud(t *testing.T, args ...string) error {
	t.Helper()
	cmd := RootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"generate", "crud"}, args...))
	return cmd.Execute()
}

func TestGenerateCrudCommand(t *testing.T) {
	t.Run("Should scaffold a bundle entity end to end", func(t *testing.T) {
		dir := t.TempDir()
		err := runCrud(t,
			"--bundle-namespace", "Acme/BlogBundle",
			"--bundle-path", dir,
			"--entity", "Blog/Post",
			"--fields", "title:string,body:text",
			"--route-prefix", "admin/blog",
			"--with-write",
		)
		require.NoError(t, err)

		for _, p := range []string{
			"Controller/Blog/PostController.php",
			"Resources/views/Blog/Post/list.html.twig",
			"Resources/views/Blog/Post/new.html.twig",
			"Tests/Controller/Blog/PostControllerTest.php",
			"Resources/config/routing/blog_post.yaml",
		} {
			_, statErr := os.Stat(filepath.Join(dir, p))
			assert.NoError(t, statErr, "missing %s", p)
		}
	})
	t.Run("Should refuse to overwrite an existing controller", func(t *testing.T) {
		dir := t.TempDir()
		args := []string{
			"--bundle-namespace", "Acme/BlogBundle",
			"--bundle-path", dir,
			"--entity", "Blog/Post",
			"--fields", "title:string",
		}
		require.NoError(t, runCrud(t, args...))

		err := runCrud(t, args...)
		var existsErr *generator.AlreadyExistsError
		require.ErrorAs(t, err, &existsErr)
	})
	t.Run("Should require the entity flag", func(t *testing.T) {
		err := runCrud(t, "--bundle-path", t.TempDir(), "--bundle-namespace", "Acme/BlogBundle")
		require.Error(t, err)
	})
	t.Run("Should reject malformed fields", func(t *testing.T) {
		err := runCrud(t,
			"--bundle-namespace", "Acme/BlogBundle",
			"--bundle-path", t.TempDir(),
			"--entity", "Blog/Post",
			"--fields", "title",
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected 'name:type'")
	})
}

func TestThemesCommand(t *testing.T) {
	cmd := RootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"themes"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "default")
}

func TestVersionCommand(t *testing.T) {
	cmd := RootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "atelier")
}
