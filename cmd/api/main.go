package main

import "billing_gateway/internal/adapter/cli"

// @title           Billing Gateway API
// @version         1.0
// @description     Mercado Pago checkout, subscriptions and webhook reconciliation.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /v1

func main() {
	cli.Execute()
}
