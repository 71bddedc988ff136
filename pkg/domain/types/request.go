package types

import "github.com/google/uuid"

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x RequestID) String() string {
	return string(x)
}
