package registry

import (
	"github.com/goodnatureofminers/mmp-backend/internal/mmp/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// TransitionSink receives every applied state transition, in commit order,
	// after the registry lock is released.
	TransitionSink interface {
		Publish(transition model.StateTransition)
	}
	Metrics interface {
		ObserveTransition(from, to model.JobState)
		ObserveRejected(operation string)
		SetContracts(n int)
	}
)
