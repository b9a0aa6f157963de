package wrapper

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	. "github.com/stretchr/testify/require"
)

func TestFilesAppend(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "dwfiles")
	NoError(t, err)
	defer os.RemoveAll(tmpDir)

	ctx := NewContext(testModuleName)
	files := NewFiles(ctx)
	fileName := filepath.Join(tmpDir, "out.csv")

	True(t, files.Create(fileName))
	True(t, files.Append(fileName, "a,b\n"))
	True(t, files.Append(fileName, "c,d\n"))
	Equal(t, 1, files.Open())
	NoError(t, files.Close())
	Equal(t, 0, files.Open())

	data, err := ioutil.ReadFile(fileName)
	NoError(t, err)
	Equal(t, "a,b\nc,d\n", string(data))
	False(t, ctx.IsError())

	True(t, files.Append(fileName, "e,f\n"))
	NoError(t, files.Close())
	data, err = ioutil.ReadFile(fileName)
	NoError(t, err)
	Equal(t, "a,b\nc,d\ne,f\n", string(data))
}

func TestFilesError(t *testing.T) {
	ctx := NewContext(testModuleName)
	files := NewFiles(ctx)

	False(t, files.Append("/not/a/valid/folder/out.csv", "nope"))
	True(t, ctx.IsError())
	Contains(t, ctx.Message(), "/not/a/valid/folder/out.csv")
}
