package types

// Contract receiver for repository contracts (instantiated only on repository init = system init)

type Contract interface {
}

type BaseContract struct {
	State StateSdk
}

func NewBaseContract(state StateSdk) *BaseContract {
	return &BaseContract{
		State: state,
	}
}
