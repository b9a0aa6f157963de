/*
Package writer dispatches every data writing operation to a backend module
selected by name at configuration time.

A writer is created with New, which resolves the "writerType" configuration
key through the alias table, loads the corresponding module, resolves the
entry point for the requested element type and initializes the backend
instance it returns:

	cfg, _ := config.LoadConfig("writer.json")
	w, err := writer.New[float32](cfg)
	if err != nil {
		// *writer.ModuleNotFoundError, *writer.SymbolNotFoundError
		// or the error returned by the backend itself
	}
	defer w.Teardown()

	ok, err := w.SaveData(0, writer.Buffers[float32]{"features": data}, n, total, 0)

Modules are either compiled in and registered from an init function, the same
way database/sql drivers are:

	func init() {
		writer.Register("BinaryReader", writer.ExportsOf(newFloat, newDouble))
	}

or script modules, <Name>.js files found in the loader path, which declare the
GetWriterF and GetWriterD entry points.
*/
package writer
