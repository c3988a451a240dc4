package forum

// SplitFee divides a premium price into the platform cut and the author
// payment. fee = floor(price*rate/10000); the two parts always sum back to
// price exactly, any rounding loss lands on the platform side.
func SplitFee(price, rateBps uint64) (authorPayment, platformFee uint64) {
	platformFee = price * rateBps / FeeRateBase
	return price - platformFee, platformFee
}
