package shared

const catalogSessionKey = "catalogSession"

func SetCatalogSession(ctx Context, session CatalogSession) {
	ctx.Set(catalogSessionKey, session)
}

func GetCatalogSession(ctx Context) CatalogSession {
	return ctx.Get(catalogSessionKey).(CatalogSession)
}

func MaybeGetCatalogSession(ctx Context) (CatalogSession, bool) {
	session, ok := ctx.Get(catalogSessionKey).(CatalogSession)
	return session, ok
}
