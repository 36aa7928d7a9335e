package memory

import pkgerrors "aura-backend/pkg/errors"

var errFetchUnavailable = pkgerrors.NewUnavailableError("reflection store")
