package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorObserverCapturesOnlyWhileAdded(t *testing.T) {
	var fallback CapturingLogger
	o := NewErrorObserver(&fallback)

	o.LogError(errors.New("before"))
	o.Add()
	assert.True(t, o.Capturing())
	o.LogError(errors.New("during"))
	o.LogError(nil)
	o.Remove()
	o.LogError(errors.New("after"))

	assert.False(t, o.Capturing())
	assert.Equal(t, []error{errors.New("during")}, o.Errors())
	assert.Equal(t, []string{"Unhandled error: before", "Unhandled error: after"}, fallback.Messages())
}

func TestErrorObserverFlush(t *testing.T) {
	o := NewErrorObserver(nil)
	o.Add()
	defer o.Remove()
	o.LogError(errors.New("a"))
	o.LogError(errors.New("b"))

	flushed := o.FlushErrors()
	assert.Len(t, flushed, 2)
	assert.Empty(t, o.Errors())
}

func TestErrorObserverNestedSpans(t *testing.T) {
	o := NewErrorObserver(nil)
	o.Add()
	o.Add()
	o.Remove()
	assert.True(t, o.Capturing())
	o.Remove()
	o.Remove()
	assert.False(t, o.Capturing())
}

func TestDefaultErrorObserver(t *testing.T) {
	o := DefaultErrorObserver()
	o.Add()
	defer func() {
		o.FlushErrors()
		o.Remove()
	}()

	LogError(errors.New("global"))
	assert.Equal(t, []error{errors.New("global")}, o.Errors())
}
