package domain

//region CourseUnavailableError

type CourseUnavailableError struct {
	Msg string
}

func (e *CourseUnavailableError) Error() string {
	return e.Msg
}

func (e *CourseUnavailableError) Is(target error) bool {
	_, ok := target.(*CourseUnavailableError)
	return ok
}

//endregion

//region AlreadyEnrolledError

type AlreadyEnrolledError struct {
	Msg string
}

func (e *AlreadyEnrolledError) Error() string {
	return e.Msg
}

func (e *AlreadyEnrolledError) Is(target error) bool {
	_, ok := target.(*AlreadyEnrolledError)
	return ok
}

//endregion

//region InsufficientBalanceError

type InsufficientBalanceError struct {
	Msg string
}

func (e *InsufficientBalanceError) Error() string {
	return e.Msg
}

func (e *InsufficientBalanceError) Is(target error) bool {
	_, ok := target.(*InsufficientBalanceError)
	return ok
}

//endregion

//region NoGroupAvailableError

type NoGroupAvailableError struct {
	Msg string
}

func (e *NoGroupAvailableError) Error() string {
	return e.Msg
}

func (e *NoGroupAvailableError) Is(target error) bool {
	_, ok := target.(*NoGroupAvailableError)
	return ok
}

//endregion

//region TimeoutError

// TimeoutError is returned when the store could not be reached or the rows
// could not be locked before the deadline. Nothing was persisted.
type TimeoutError struct {
	Msg string
	Err error
}

func (e *TimeoutError) Error() string {
	if e.Err == nil {
		return e.Msg
	}

	return e.Msg + ": " + e.Err.Error()
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

func (e *TimeoutError) Is(target error) bool {
	_, ok := target.(*TimeoutError)
	return ok
}

//endregion

//region StoreFailureError

type StoreFailureError struct {
	Msg string
	Err error
}

func (e *StoreFailureError) Error() string {
	if e.Err == nil {
		return e.Msg
	}

	return e.Msg + ": " + e.Err.Error()
}

func (e *StoreFailureError) Unwrap() error {
	return e.Err
}

func (e *StoreFailureError) Is(target error) bool {
	_, ok := target.(*StoreFailureError)
	return ok
}

//endregion

//region InsufficientFundsError

// InsufficientFundsError is reported by the ledger when a conditional debit
// would take the balance below zero.
type InsufficientFundsError struct {
	Msg string
}

func (e *InsufficientFundsError) Error() string {
	return e.Msg
}

func (e *InsufficientFundsError) Is(target error) bool {
	_, ok := target.(*InsufficientFundsError)
	return ok
}

//endregion

//region AccountNotFoundError

type AccountNotFoundError struct {
	Msg string
}

func (e *AccountNotFoundError) Error() string {
	return e.Msg
}

func (e *AccountNotFoundError) Is(target error) bool {
	_, ok := target.(*AccountNotFoundError)
	return ok
}

//endregion

//region GroupFullError

type GroupFullError struct {
	Msg string
}

func (e *GroupFullError) Error() string {
	return e.Msg
}

func (e *GroupFullError) Is(target error) bool {
	_, ok := target.(*GroupFullError)
	return ok
}

//endregion

//region DuplicateSubscriptionError

type DuplicateSubscriptionError struct {
	Msg string
}

func (e *DuplicateSubscriptionError) Error() string {
	return e.Msg
}

func (e *DuplicateSubscriptionError) Is(target error) bool {
	_, ok := target.(*DuplicateSubscriptionError)
	return ok
}

//endregion

//region InvalidArgumentsError

type InvalidArgumentsError struct {
	Msg string
}

func (e *InvalidArgumentsError) Error() string {
	return e.Msg
}

func (e *InvalidArgumentsError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentsError)
	return ok
}

//endregion
