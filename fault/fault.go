// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ArithmeticError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrCannotDecodeAccount    = InvalidError("cannot decode account")
	ErrChecksumMismatch       = ProcessError("checksum mismatch")
	ErrConfigurationNotTable  = InvalidError("configuration did not return a table")
	ErrDatabaseIsNotSet       = ProcessError("database is not set")
	ErrDatabaseIsReadOnly     = ProcessError("database is read only")
	ErrDivisionByZero         = ArithmeticError("division by zero")
	ErrInsolvent              = InvalidError("operation would leave vault insolvent")
	ErrInvalidAmount          = InvalidError("invalid amount")
	ErrInvalidChain           = InvalidError("invalid chain")
	ErrInvalidCount           = InvalidError("invalid count")
	ErrInvalidCursor          = InvalidError("invalid cursor")
	ErrInvalidKeyLength       = LengthError("invalid key length")
	ErrInvalidKeyType         = InvalidError("invalid key type")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrJournalEntryLength     = LengthError("journal entry length is invalid")
	ErrNotInitialised         = NotFoundError("not initialised")
	ErrNotPublicKey           = InvalidError("not public key")
	ErrOverflow               = ArithmeticError("arithmetic overflow")
	ErrRecordLength           = LengthError("vault record length is invalid")
	ErrTransactionAlreadyOpen = ProcessError("transaction already open")
	ErrTransactionNotOpen     = ProcessError("transaction not open")
	ErrUnderflow              = ArithmeticError("arithmetic underflow")
	ErrUnknownOperation       = InvalidError("unknown operation")
	ErrVaultAlreadyExists     = ExistsError("vault already exists")
	ErrVaultNotFound          = NotFoundError("vault not found")
	ErrWrongNetworkForAccount = InvalidError("wrong network for account")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ArithmeticError) Error() string { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LengthError) Error() string     { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrArithmetic(e error) bool { _, ok := e.(ArithmeticError); return ok }
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool     { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
