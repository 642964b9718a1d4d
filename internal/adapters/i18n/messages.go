package i18n

import "golang.org/x/text/language"

// Message arguments are positional: %[1]s is the first argument passed to T.
var messages = map[language.Tag]map[string]string{
	language.English: {
		"swap.warning.offline.title":   "You're offline",
		"swap.warning.offline.message": "You may have lost internet connection or the network may be down. Check your connection and try again.",

		"swap.warning.insufficientBalance.title":        "You don't have enough %[1]s.",
		"common.insufficientTokenBalance.error.simple": "Not enough %[1]s",

		"swap.warning.insufficientGas.title":   "You don't have enough %[1]s to cover the network cost",
		"swap.warning.insufficientGas.message": "Not enough %[1]s balance for network cost",
		"swap.warning.insufficientGas.button":  "Not enough %[1]s",

		"swap.warning.noRoutesFound.title":   "No routes available",
		"swap.warning.noRoutesFound.message": "No route was found for this swap. Try a different amount or token.",
		"swap.warning.lowLiquidity.title":    "Not enough liquidity",
		"swap.warning.lowLiquidity.message":  "There isn't enough liquidity available for this swap. Try a smaller amount.",
		"swap.warning.rateLimit.title":       "Rate limit exceeded",
		"swap.warning.rateLimit.message":     "Too many requests. Try again in a few moments.",
		"swap.warning.router.title":          "This trade cannot be completed right now",
		"swap.warning.router.message":        "The routing service could not quote this trade. If the problem persists, try again later.",

		"swap.warning.priceImpact.title":            "High price impact (%[1]s)",
		"swap.warning.priceImpact.message":          "Due to the amount of %[1]s liquidity currently available, the more %[2]s you try to swap, the less %[1]s you will receive.",
		"swap.warning.priceImpact.title.veryHigh":   "Very high price impact (%[1]s)",
		"swap.warning.priceImpact.message.veryHigh": "This transaction will result in a %[1]s price impact on the market price of this pool and will likely result in loss of funds.",
	},
	language.Spanish: {
		"swap.warning.offline.title":   "Estás sin conexión",
		"swap.warning.offline.message": "Es posible que hayas perdido la conexión a internet o que la red no esté disponible. Revisa tu conexión e inténtalo de nuevo.",

		"swap.warning.insufficientBalance.title":        "No tienes suficiente %[1]s.",
		"common.insufficientTokenBalance.error.simple": "%[1]s insuficiente",

		"swap.warning.insufficientGas.title":   "No tienes suficiente %[1]s para cubrir el costo de red",
		"swap.warning.insufficientGas.message": "Saldo de %[1]s insuficiente para el costo de red",
		"swap.warning.insufficientGas.button":  "%[1]s insuficiente",

		"swap.warning.noRoutesFound.title":   "No hay rutas disponibles",
		"swap.warning.noRoutesFound.message": "No se encontró una ruta para este intercambio. Prueba con otra cantidad u otro token.",
		"swap.warning.lowLiquidity.title":    "Liquidez insuficiente",
		"swap.warning.lowLiquidity.message":  "No hay suficiente liquidez para este intercambio. Prueba con una cantidad menor.",
		"swap.warning.rateLimit.title":       "Límite de solicitudes superado",
		"swap.warning.rateLimit.message":     "Demasiadas solicitudes. Inténtalo de nuevo en unos momentos.",
		"swap.warning.router.title":          "Este intercambio no se puede completar ahora",
		"swap.warning.router.message":        "El servicio de rutas no pudo cotizar este intercambio. Si el problema persiste, inténtalo más tarde.",

		"swap.warning.priceImpact.title":            "Impacto en el precio alto (%[1]s)",
		"swap.warning.priceImpact.message":          "Debido a la liquidez de %[1]s disponible, cuanto más %[2]s intentes intercambiar, menos %[1]s recibirás.",
		"swap.warning.priceImpact.title.veryHigh":   "Impacto en el precio muy alto (%[1]s)",
		"swap.warning.priceImpact.message.veryHigh": "Esta transacción tendrá un impacto de %[1]s en el precio de mercado de este pool y probablemente resultará en una pérdida de fondos.",
	},
}
