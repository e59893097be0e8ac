package transduce

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"transduce/internal/xlog"
)

// WithLogging wraps t so that every Step call the resulting reducer chain
// makes is traced at debug level through log, tagged with name and a
// correlation id unique to this Apply — one per drive, since Apply is
// called once per Transduce call, which is exactly the granularity
// needed to tell interleaved log lines from independent drives of the
// same reusable transducer value apart. Cat's inner folds run inside the
// same Apply, so their lines share the enclosing drive's id.
//
// This is purely a diagnostic seam, adapted from the AttachLoggers
// pattern in other_examples/sdboyer-transducers-go: it adds no
// observable behavior, and constructs no logger at all until used.
func WithLogging[R, In, Out any](t Transducer[R, In, Out], log zerolog.Logger, name string) Transducer[R, In, Out] {
	return TransducerFunc[R, In, Out](func(down Reducer[R, Out]) Reducer[R, In] {
		inner := t.Apply(down)
		return &loggingReducer[R, In, Out]{
			inner:         inner,
			log:           xlog.New(log, name),
			name:          name,
			correlationID: uuid.NewString(),
		}
	})
}

type loggingReducer[R, In, Out any] struct {
	inner         Reducer[R, In]
	log           *xlog.Logger
	name          string
	correlationID string
}

func (l *loggingReducer[R, In, Out]) Init() R {
	seed := l.inner.Init()
	l.log.Debug(l.correlationID, "init", map[string]any{"stage": l.name, "seed": fmt.Sprintf("%v", seed)})
	return seed
}

func (l *loggingReducer[R, In, Out]) Complete(result R) R {
	final := l.inner.Complete(result)
	l.log.Debug(l.correlationID, "complete", map[string]any{"stage": l.name, "result": fmt.Sprintf("%v", final)})
	return final
}

func (l *loggingReducer[R, In, Out]) Step(result R, input In) Step[R] {
	sr := l.inner.Step(result, input)
	l.log.Debug(l.correlationID, "step", map[string]any{
		"stage":   l.name,
		"input":   fmt.Sprintf("%v", input),
		"result":  fmt.Sprintf("%v", sr.Value()),
		"reduced": sr.IsReduced(),
	})
	return sr
}
