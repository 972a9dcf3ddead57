package constants

// process exit codes
const ExitOK = 0
const ExitFailure = 1
const ExitInvalidHost = 2
const ExitUsernameTooLong = 3
const ExitUnexpectedAuthResponse = 4
const ExitAuthError = 100

// pairing
const MaxUsernameLength = 32
const DeviceTypePrefix = "my_hue_app#"

const EnvPrefix = "HUE"
