package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultAlgorithm = "HS256"

type Options struct {
	Secret    []byte
	Algorithm string        // 默认 HS256，仅支持 HMAC 族
	TTL       time.Duration // 默认 1h
	Now       func() time.Time
}

// Codec 签发与校验凭证；构造后只读，可并发使用
type Codec struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	now    func() time.Time
}

func NewCodec(o Options) (*Codec, error) {
	if len(o.Secret) == 0 {
		return nil, errors.New("jwt secret must not be empty")
	}
	if o.Algorithm == "" {
		o.Algorithm = DefaultAlgorithm
	}
	m, ok := jwt.GetSigningMethod(o.Algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported jwt algorithm %q", o.Algorithm)
	}
	if o.TTL <= 0 {
		o.TTL = time.Hour
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	secret := make([]byte, len(o.Secret))
	copy(secret, o.Secret)
	return &Codec{secret: secret, method: m, ttl: o.TTL, now: o.Now}, nil
}

func (c *Codec) TTL() time.Duration { return c.ttl }

// Issue 使用默认有效期
func (c *Codec) Issue(p Principal) (string, error) { return c.Encode(p, c.ttl) }

func (c *Codec) Encode(p Principal, ttl time.Duration) (string, error) {
	if !p.Role.Valid() {
		return "", fmt.Errorf("cannot encode role %q", p.Role)
	}
	now := c.now().Unix()
	claims := jwt.MapClaims{
		"sub":   p.ID,
		"name":  p.Name,
		"email": p.Email,
		"role":  string(p.Role),
		"iat":   now,
		"exp":   now + int64(ttl/time.Second),
	}
	return jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
}

func (c *Codec) Decode(token string) (Principal, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
		jwt.WithJSONNumber(),
	)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}
	return principalFromClaims(claims)
}

func principalFromClaims(mc jwt.MapClaims) (Principal, error) {
	sub, ok := mc["sub"].(json.Number)
	if !ok {
		return Principal{}, ErrInvalidPayload
	}
	id, err := sub.Int64()
	if err != nil {
		return Principal{}, ErrInvalidPayload
	}
	name, ok1 := mc["name"].(string)
	email, ok2 := mc["email"].(string)
	rawRole, ok3 := mc["role"].(string)
	if !ok1 || !ok2 || !ok3 {
		return Principal{}, ErrInvalidPayload
	}
	role, err := ParseRole(rawRole)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	p := Principal{ID: id, Name: name, Email: email, Role: role}
	if iat, err := mc.GetIssuedAt(); err == nil && iat != nil {
		p.IssuedAt = iat.Time
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		p.ExpiresAt = exp.Time
	}
	return p, nil
}
