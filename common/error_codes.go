package common

// Error is an engine error code. ErrorOK is success; every other value is a failure.
//
// Error implements the error interface so a failed code can be returned and wrapped like any
// other Go error. Use Err to convert a code that may be ErrorOK.
type Error int64

const (
	ErrorOK                      Error = 0
	ErrorFailed                  Error = 1
	ErrorUnavailable             Error = 2
	ErrorUnconfigured            Error = 3
	ErrorUnauthorized            Error = 4
	ErrorParameterRangeError     Error = 5
	ErrorOutOfMemory             Error = 6
	ErrorFileNotFound            Error = 7
	ErrorFileBadDrive            Error = 8
	ErrorFileBadPath             Error = 9
	ErrorFileNoPermission        Error = 10
	ErrorFileAlreadyInUse        Error = 11
	ErrorFileCantOpen            Error = 12
	ErrorFileCantWrite           Error = 13
	ErrorFileCantRead            Error = 14
	ErrorFileUnrecognized        Error = 15
	ErrorFileCorrupt             Error = 16
	ErrorFileMissingDependencies Error = 17
	ErrorFileEOF                 Error = 18
	ErrorCantOpen                Error = 19
	ErrorCantCreate              Error = 20
	ErrorQueryFailed             Error = 21
	ErrorAlreadyInUse            Error = 22
	ErrorLocked                  Error = 23
	ErrorTimeout                 Error = 24
	ErrorCantConnect             Error = 25
	ErrorCantResolve             Error = 26
	ErrorConnectionError         Error = 27
	ErrorCantAcquireResource     Error = 28
	ErrorCantFork                Error = 29
	ErrorInvalidData             Error = 30
	ErrorInvalidParameter        Error = 31
	ErrorAlreadyExists           Error = 32
	ErrorDoesNotExist            Error = 33
	ErrorDatabaseCantRead        Error = 34
	ErrorDatabaseCantWrite       Error = 35
	ErrorCompilationFailed       Error = 36
	ErrorMethodNotFound          Error = 37
	ErrorLinkFailed              Error = 38
	ErrorScriptFailed            Error = 39
	ErrorCyclicLink              Error = 40
	ErrorInvalidDeclaration      Error = 41
	ErrorDuplicateSymbol         Error = 42
	ErrorParseError              Error = 43
	ErrorBusy                    Error = 44
	ErrorSkip                    Error = 45
	ErrorHelp                    Error = 46 // user requested help
	ErrorBug                     Error = 47 // internal engine bug
	ErrorPrinterOnFire           Error = 48 // yes, this is a real engine error code
)

var ErrorEnum = MustEnum("Error", []Member[Error]{
	{Name: "OK", EngineName: "OK", Value: ErrorOK},
	{Name: "Failed", EngineName: "FAILED", Value: ErrorFailed},
	{Name: "Unavailable", EngineName: "ERR_UNAVAILABLE", Value: ErrorUnavailable},
	{Name: "Unconfigured", EngineName: "ERR_UNCONFIGURED", Value: ErrorUnconfigured},
	{Name: "Unauthorized", EngineName: "ERR_UNAUTHORIZED", Value: ErrorUnauthorized},
	{Name: "ParameterRangeError", EngineName: "ERR_PARAMETER_RANGE_ERROR", Value: ErrorParameterRangeError},
	{Name: "OutOfMemory", EngineName: "ERR_OUT_OF_MEMORY", Value: ErrorOutOfMemory},
	{Name: "FileNotFound", EngineName: "ERR_FILE_NOT_FOUND", Value: ErrorFileNotFound},
	{Name: "FileBadDrive", EngineName: "ERR_FILE_BAD_DRIVE", Value: ErrorFileBadDrive},
	{Name: "FileBadPath", EngineName: "ERR_FILE_BAD_PATH", Value: ErrorFileBadPath},
	{Name: "FileNoPermission", EngineName: "ERR_FILE_NO_PERMISSION", Value: ErrorFileNoPermission},
	{Name: "FileAlreadyInUse", EngineName: "ERR_FILE_ALREADY_IN_USE", Value: ErrorFileAlreadyInUse},
	{Name: "FileCantOpen", EngineName: "ERR_FILE_CANT_OPEN", Value: ErrorFileCantOpen},
	{Name: "FileCantWrite", EngineName: "ERR_FILE_CANT_WRITE", Value: ErrorFileCantWrite},
	{Name: "FileCantRead", EngineName: "ERR_FILE_CANT_READ", Value: ErrorFileCantRead},
	{Name: "FileUnrecognized", EngineName: "ERR_FILE_UNRECOGNIZED", Value: ErrorFileUnrecognized},
	{Name: "FileCorrupt", EngineName: "ERR_FILE_CORRUPT", Value: ErrorFileCorrupt},
	{Name: "FileMissingDependencies", EngineName: "ERR_FILE_MISSING_DEPENDENCIES", Value: ErrorFileMissingDependencies},
	{Name: "FileEOF", EngineName: "ERR_FILE_EOF", Value: ErrorFileEOF},
	{Name: "CantOpen", EngineName: "ERR_CANT_OPEN", Value: ErrorCantOpen},
	{Name: "CantCreate", EngineName: "ERR_CANT_CREATE", Value: ErrorCantCreate},
	{Name: "QueryFailed", EngineName: "ERR_QUERY_FAILED", Value: ErrorQueryFailed},
	{Name: "AlreadyInUse", EngineName: "ERR_ALREADY_IN_USE", Value: ErrorAlreadyInUse},
	{Name: "Locked", EngineName: "ERR_LOCKED", Value: ErrorLocked},
	{Name: "Timeout", EngineName: "ERR_TIMEOUT", Value: ErrorTimeout},
	{Name: "CantConnect", EngineName: "ERR_CANT_CONNECT", Value: ErrorCantConnect},
	{Name: "CantResolve", EngineName: "ERR_CANT_RESOLVE", Value: ErrorCantResolve},
	{Name: "ConnectionError", EngineName: "ERR_CONNECTION_ERROR", Value: ErrorConnectionError},
	{Name: "CantAcquireResource", EngineName: "ERR_CANT_ACQUIRE_RESOURCE", Value: ErrorCantAcquireResource},
	{Name: "CantFork", EngineName: "ERR_CANT_FORK", Value: ErrorCantFork},
	{Name: "InvalidData", EngineName: "ERR_INVALID_DATA", Value: ErrorInvalidData},
	{Name: "InvalidParameter", EngineName: "ERR_INVALID_PARAMETER", Value: ErrorInvalidParameter},
	{Name: "AlreadyExists", EngineName: "ERR_ALREADY_EXISTS", Value: ErrorAlreadyExists},
	{Name: "DoesNotExist", EngineName: "ERR_DOES_NOT_EXIST", Value: ErrorDoesNotExist},
	{Name: "DatabaseCantRead", EngineName: "ERR_DATABASE_CANT_READ", Value: ErrorDatabaseCantRead},
	{Name: "DatabaseCantWrite", EngineName: "ERR_DATABASE_CANT_WRITE", Value: ErrorDatabaseCantWrite},
	{Name: "CompilationFailed", EngineName: "ERR_COMPILATION_FAILED", Value: ErrorCompilationFailed},
	{Name: "MethodNotFound", EngineName: "ERR_METHOD_NOT_FOUND", Value: ErrorMethodNotFound},
	{Name: "LinkFailed", EngineName: "ERR_LINK_FAILED", Value: ErrorLinkFailed},
	{Name: "ScriptFailed", EngineName: "ERR_SCRIPT_FAILED", Value: ErrorScriptFailed},
	{Name: "CyclicLink", EngineName: "ERR_CYCLIC_LINK", Value: ErrorCyclicLink},
	{Name: "InvalidDeclaration", EngineName: "ERR_INVALID_DECLARATION", Value: ErrorInvalidDeclaration},
	{Name: "DuplicateSymbol", EngineName: "ERR_DUPLICATE_SYMBOL", Value: ErrorDuplicateSymbol},
	{Name: "ParseError", EngineName: "ERR_PARSE_ERROR", Value: ErrorParseError},
	{Name: "Busy", EngineName: "ERR_BUSY", Value: ErrorBusy},
	{Name: "Skip", EngineName: "ERR_SKIP", Value: ErrorSkip},
	{Name: "Help", EngineName: "ERR_HELP", Value: ErrorHelp},
	{Name: "Bug", EngineName: "ERR_BUG", Value: ErrorBug},
	{Name: "PrinterOnFire", EngineName: "ERR_PRINTER_ON_FIRE", Value: ErrorPrinterOnFire},
})

func (e Error) String() string { return ErrorEnum.NameOf(e) }

// Error implements the error interface using the engine name, e.g. "ERR_FILE_NOT_FOUND".
func (e Error) Error() string {
	return ErrorEnum.EngineNameOf(e)
}

// Err returns nil for ErrorOK and the code itself otherwise.
//
// Returns:
//   - error: nil on success, the Error value on failure
func (e Error) Err() error {
	if e == ErrorOK {
		return nil
	}
	return e
}
