package async

import "errors"

var ErrAwaitCanceled = errors.New("async: context done before future completed")
