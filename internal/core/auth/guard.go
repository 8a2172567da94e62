package auth

import "net/http"

// Guard 所有鉴权判断的唯一入口。
// 未认证错误原样透传自 BearerToken / Codec，角色不匹配返回 ErrForbidden。
type Guard struct {
	codec *Codec
}

func NewGuard(c *Codec) *Guard { return &Guard{codec: c} }

func (g *Guard) RequirePrincipal(h http.Header) (Principal, error) {
	tok, err := BearerToken(h)
	if err != nil {
		return Principal{}, err
	}
	return g.codec.Decode(tok)
}

func (g *Guard) RequireRole(h http.Header, r Role) (Principal, error) {
	p, err := g.RequirePrincipal(h)
	if err != nil {
		return Principal{}, err
	}
	if !HasRole(p, r) {
		return Principal{}, ErrForbidden
	}
	return p, nil
}
