package jwt_test

import (
	"time"

	"bookmarkd/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service   *jwt.JWTService
		tokenInfo jwt.TokenInfo
		signed    string
	)

	BeforeEach(func() {
		service = jwt.NewJWTService([]byte("test-secret"))
		tokenInfo = jwt.TokenInfo{
			Email:      "a@x.com",
			Subject:    "user-id",
			Expiration: 24,
		}

		token := service.Generate(tokenInfo)
		var err error
		signed, err = service.Sign(token)
		Expect(err).NotTo(HaveOccurred())
		Expect(signed).NotTo(BeEmpty())
	})

	AfterEach(func() {
		jwt.TimeNow = time.Now
	})

	When("a signed token is validated", func() {
		It("should return the claims it was generated with", func() {
			claims, err := service.Validate(signed)

			Expect(err).NotTo(HaveOccurred())
			Expect(claims["sub"]).To(Equal(tokenInfo.Subject))
			Expect(claims["email"]).To(Equal(tokenInfo.Email))
			Expect(claims).To(HaveKey("iat"))
			Expect(claims).To(HaveKey("exp"))
		})
	})

	When("the token has expired", func() {
		BeforeEach(func() {
			jwt.TimeNow = func() time.Time {
				return time.Now().Add(25 * time.Hour)
			}
		})

		It("should return token expired error", func() {
			claims, err := service.Validate(signed)

			Expect(err).To(MatchError(jwt.ErrTokenExpired))
			Expect(claims).To(BeNil())
		})
	})

	When("the token was signed with a different secret", func() {
		It("should return token not valid error", func() {
			other := jwt.NewJWTService([]byte("other-secret"))

			claims, err := other.Validate(signed)

			Expect(err).To(MatchError(jwt.ErrTokenNotValid))
			Expect(claims).To(BeNil())
		})
	})

	When("the token string is garbage", func() {
		It("should return token not valid error", func() {
			claims, err := service.Validate("not.a.token")

			Expect(err).To(MatchError(jwt.ErrTokenNotValid))
			Expect(claims).To(BeNil())
		})
	})
})
