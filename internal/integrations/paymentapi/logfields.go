package paymentapi

import "go.uber.org/zap"

func zapOp(op string) zap.Field {
	return zap.String("op", op)
}

func zapPage(current, last, rows int) zap.Field {
	return zap.Dict("page", zap.Int("current", current), zap.Int("last", last), zap.Int("rows", rows))
}
