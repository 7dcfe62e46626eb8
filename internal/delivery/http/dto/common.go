package dto

import "time"

// timeLayout is used for the server-managed timestamps in responses.
const timeLayout = time.RFC3339
