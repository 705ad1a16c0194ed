package main

// @title           POS Backend API
// @version         1.0
// @description     Multi-store point-of-sale back office: inventory ledger, reservations, transfers and bill settlement

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description JWT authentication header using the Bearer scheme. Example: "Bearer {token}"
