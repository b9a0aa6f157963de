package wrapper

import (
	"fmt"
	"sync"

	"github.com/evilsocket/islazy/log"
)

// Context is exposed to script modules as the "ctx" global, it is
// the channel scripts use to report errors back to the writer and
// to log messages.
type Context struct {
	sync.RWMutex
	module  string
	message string
	isError bool
}

// NewContext creates the context for the named module.
func NewContext(module string) *Context {
	return &Context{module: module}
}

// Reset clears the error state, it's called before every call into
// the script.
func (ctx *Context) Reset() {
	ctx.Lock()
	defer ctx.Unlock()
	ctx.message = ""
	ctx.isError = false
}

// Error flags the current call as failed with the given message.
func (ctx *Context) Error(msg string) {
	ctx.Lock()
	defer ctx.Unlock()
	ctx.message = msg
	ctx.isError = true
}

// IsError returns true if Error has been called since the last Reset.
func (ctx *Context) IsError() bool {
	ctx.RLock()
	defer ctx.RUnlock()
	return ctx.isError
}

// Message returns the last error message.
func (ctx *Context) Message() string {
	ctx.RLock()
	defer ctx.RUnlock()
	return ctx.message
}

// Err returns the current error state as a Go error, or nil.
func (ctx *Context) Err() error {
	ctx.RLock()
	defer ctx.RUnlock()
	if !ctx.isError {
		return nil
	}
	return fmt.Errorf("%s: %s", ctx.module, ctx.message)
}

// Log writes an informative message on behalf of the script.
func (ctx *Context) Log(msg string) {
	log.Info("[%s] %s", ctx.module, msg)
}

// Debug writes a debug message on behalf of the script.
func (ctx *Context) Debug(msg string) {
	log.Debug("[%s] %s", ctx.module, msg)
}
