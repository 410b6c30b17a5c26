package cognitoclient

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	cognito "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// User is the default user struct for all basic Cognito operations.
type User struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserConfirmation is the default structure for approving e-mail verification.
type UserConfirmation struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// UserLogin defines the standard structure for logging in to the application.
type UserLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthCreate represents the response of Cognito sign in approval.
type AuthCreate struct {
	IDToken     string `json:"id_token"`
	AccessToken string `json:"access_token"`
}

type CognitoInterface interface {
	SignUp(user *User) (string, error)
	SignIn(user *UserLogin) (*AuthCreate, error)
	GlobalSignOut(accessToken string) error
	ConfirmAccount(user *UserConfirmation) error
	ResendConfirmation(email string) error
	AdminDeleteUser(email string) error
}

type cognitoClient struct {
	client      *cognito.Client
	appClientId string
	userPoolId  string
}

func InitCognitoClient() (CognitoInterface, error) {
	region := os.Getenv("AWS_COGNITO_REGION")
	cfg, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(region))
	if err != nil {
		return nil, err
	}

	return &cognitoClient{
		client:      cognito.NewFromConfig(cfg),
		appClientId: os.Getenv("COGNITO_APP_CLIENT_ID"),
		userPoolId:  os.Getenv("COGNITO_USER_POOL_ID"),
	}, nil
}

// SignUp creates a new user row on Cognito and returns its "sub" (the UUID)
func (c *cognitoClient) SignUp(user *User) (string, error) {
	out, err := c.client.SignUp(context.Background(), &cognito.SignUpInput{
		ClientId: aws.String(c.appClientId),
		Username: aws.String(user.Email),
		Password: aws.String(user.Password),
		UserAttributes: []types.AttributeType{
			{
				Name:  aws.String("email"),
				Value: aws.String(user.Email),
			},
		},
	})
	if err != nil {
		return "", err
	}
	return aws.ToString(out.UserSub), nil
}

func (c *cognitoClient) SignIn(user *UserLogin) (*AuthCreate, error) {
	out, err := c.client.InitiateAuth(context.Background(), &cognito.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(c.appClientId),
		AuthParameters: map[string]string{
			"USERNAME": user.Email,
			"PASSWORD": user.Password,
		},
	})
	if err != nil {
		return nil, err
	}

	result := out.AuthenticationResult
	return &AuthCreate{
		IDToken:     aws.ToString(result.IdToken),
		AccessToken: aws.ToString(result.AccessToken),
	}, nil
}

// GlobalSignOut signs out all the user sessions on all devices.
// In other words, it invalidates all the existing JWT tokens.
func (c *cognitoClient) GlobalSignOut(accessToken string) error {
	_, err := c.client.GlobalSignOut(context.Background(), &cognito.GlobalSignOutInput{
		AccessToken: aws.String(accessToken),
	})
	return err
}

func (c *cognitoClient) ConfirmAccount(user *UserConfirmation) error {
	_, err := c.client.ConfirmSignUp(context.Background(), &cognito.ConfirmSignUpInput{
		ClientId:         aws.String(c.appClientId),
		Username:         aws.String(user.Email),
		ConfirmationCode: aws.String(user.Code),
	})
	return err
}

func (c *cognitoClient) ResendConfirmation(email string) error {
	_, err := c.client.ResendConfirmationCode(context.Background(), &cognito.ResendConfirmationCodeInput{
		ClientId: aws.String(c.appClientId),
		Username: aws.String(email),
	})
	return err
}

// AdminDeleteUser hard-deletes the pool account. Used to roll back a
// signup when the local insert fails.
func (c *cognitoClient) AdminDeleteUser(email string) error {
	_, err := c.client.AdminDeleteUser(context.Background(), &cognito.AdminDeleteUserInput{
		UserPoolId: aws.String(c.userPoolId),
		Username:   aws.String(email),
	})
	return err
}
